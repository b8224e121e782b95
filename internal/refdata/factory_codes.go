// Package refdata holds the static per-brand reference tables consumed
// by the decoders and rule engines. Tables are immutable after process
// start; lookups are exact-match on case-normalized keys and report a
// miss with ok=false, never an error.
package refdata

import "strings"

// FactoryInfo describes a Louis Vuitton factory code.
type FactoryInfo struct {
	Code     string
	Location string
	Country  string
	Active   bool
}

// lvFactoryCodes maps the two-letter factory prefix of a date code to
// its manufacturing site. Codes retired before the 2021 microchip
// transition carry Active=false.
var lvFactoryCodes = map[string]FactoryInfo{
	"A0": {Code: "A0", Location: "Asnières-sur-Seine", Country: "France", Active: false},
	"A1": {Code: "A1", Location: "Asnières-sur-Seine", Country: "France", Active: false},
	"A2": {Code: "A2", Location: "Asnières-sur-Seine", Country: "France", Active: false},
	"AA": {Code: "AA", Location: "Asnières-sur-Seine", Country: "France", Active: true},
	"AN": {Code: "AN", Location: "Asnières-sur-Seine", Country: "France", Active: true},
	"AR": {Code: "AR", Location: "Asnières-sur-Seine", Country: "France", Active: true},
	"AS": {Code: "AS", Location: "Asnières-sur-Seine", Country: "France", Active: true},
	"BA": {Code: "BA", Location: "Barbera del Valles", Country: "Spain", Active: true},
	"BJ": {Code: "BJ", Location: "Beaulieu-sur-Layon", Country: "France", Active: true},
	"BU": {Code: "BU", Location: "Barbera del Valles", Country: "Spain", Active: true},
	"CA": {Code: "CA", Location: "Barbera del Valles", Country: "Spain", Active: true},
	"CT": {Code: "CT", Location: "Cergy-Pontoise", Country: "France", Active: true},
	"DR": {Code: "DR", Location: "Ducey", Country: "France", Active: true},
	"DU": {Code: "DU", Location: "Ducey", Country: "France", Active: true},
	"FC": {Code: "FC", Location: "Alvarado, Texas", Country: "USA", Active: true},
	"FH": {Code: "FH", Location: "Irwindale, California", Country: "USA", Active: true},
	"FL": {Code: "FL", Location: "San Dimas, California", Country: "USA", Active: true},
	"GI": {Code: "GI", Location: "Condé", Country: "France", Active: true},
	"LW": {Code: "LW", Location: "Sainte-Florence", Country: "France", Active: true},
	"MB": {Code: "MB", Location: "Montebourg", Country: "France", Active: true},
	"MI": {Code: "MI", Location: "Marsaz", Country: "France", Active: true},
	"OS": {Code: "OS", Location: "Johnnes, Ardennes", Country: "France", Active: false},
	"RA": {Code: "RA", Location: "Sicily", Country: "Italy", Active: true},
	"RI": {Code: "RI", Location: "Sicily", Country: "Italy", Active: true},
	"SD": {Code: "SD", Location: "San Dimas, California", Country: "USA", Active: true},
	"SF": {Code: "SF", Location: "Sicily", Country: "Italy", Active: true},
	"TH": {Code: "TH", Location: "Sainte-Pol", Country: "France", Active: false},
	"VI": {Code: "VI", Location: "Viana do Castelo", Country: "Portugal", Active: true},
	"VX": {Code: "VX", Location: "Viana do Castelo", Country: "Portugal", Active: true},
}

// LookupFactory returns factory metadata for a two-letter code.
func LookupFactory(code string) (FactoryInfo, bool) {
	info, ok := lvFactoryCodes[strings.ToUpper(strings.TrimSpace(code))]
	return info, ok
}
