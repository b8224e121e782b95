package refdata

import "strings"

// WatchModel describes a catalog entry for a watch reference number.
type WatchModel struct {
	Reference    string
	Family       string
	Name         string
	Material     string
	Discontinued bool
}

// watchCatalog maps reference numbers to model metadata. References are
// 5–6 digits with up to four trailing letters encoding bezel/dial
// variants (LN = lunette noire, LV = lunette verte, BLRO = blue/red).
var watchCatalog = map[string]WatchModel{
	"16610":      {Reference: "16610", Family: "Submariner", Name: "Submariner Date", Material: "stainless steel", Discontinued: true},
	"14060":      {Reference: "14060", Family: "Submariner", Name: "Submariner No-Date", Material: "stainless steel", Discontinued: true},
	"14060M":     {Reference: "14060M", Family: "Submariner", Name: "Submariner No-Date", Material: "stainless steel", Discontinued: true},
	"16710":      {Reference: "16710", Family: "GMT-Master", Name: "GMT-Master II", Material: "stainless steel", Discontinued: true},
	"16570":      {Reference: "16570", Family: "Explorer", Name: "Explorer II", Material: "stainless steel", Discontinued: true},
	"116610LN":   {Reference: "116610LN", Family: "Submariner", Name: "Submariner Date", Material: "stainless steel / ceramic", Discontinued: true},
	"116610LV":   {Reference: "116610LV", Family: "Submariner", Name: "Submariner Date \"Hulk\"", Material: "stainless steel / ceramic", Discontinued: true},
	"114060":     {Reference: "114060", Family: "Submariner", Name: "Submariner No-Date", Material: "stainless steel / ceramic", Discontinued: true},
	"124060":     {Reference: "124060", Family: "Submariner", Name: "Submariner No-Date", Material: "stainless steel / ceramic", Discontinued: false},
	"126610LN":   {Reference: "126610LN", Family: "Submariner", Name: "Submariner Date", Material: "stainless steel / ceramic", Discontinued: false},
	"126610LV":   {Reference: "126610LV", Family: "Submariner", Name: "Submariner Date \"Starbucks\"", Material: "stainless steel / ceramic", Discontinued: false},
	"116500LN":   {Reference: "116500LN", Family: "Daytona", Name: "Cosmograph Daytona", Material: "stainless steel / ceramic", Discontinued: true},
	"126500LN":   {Reference: "126500LN", Family: "Daytona", Name: "Cosmograph Daytona", Material: "stainless steel / ceramic", Discontinued: false},
	"126710BLRO": {Reference: "126710BLRO", Family: "GMT-Master", Name: "GMT-Master II \"Pepsi\"", Material: "stainless steel / ceramic", Discontinued: false},
	"126710BLNR": {Reference: "126710BLNR", Family: "GMT-Master", Name: "GMT-Master II \"Batman\"", Material: "stainless steel / ceramic", Discontinued: false},
	"126334":     {Reference: "126334", Family: "Datejust", Name: "Datejust 41", Material: "stainless steel / white gold", Discontinued: false},
	"228235":     {Reference: "228235", Family: "Day-Date", Name: "Day-Date 40", Material: "everose gold", Discontinued: false},
	"124270":     {Reference: "124270", Family: "Explorer", Name: "Explorer 36", Material: "stainless steel", Discontinued: false},
}

// LookupWatchReference returns catalog metadata for a reference number.
func LookupWatchReference(ref string) (WatchModel, bool) {
	m, ok := watchCatalog[strings.ToUpper(strings.TrimSpace(ref))]
	return m, ok
}
