// Package decoder contains the brand-specific identifier decoders, the
// dispatcher that routes raw identifiers to them, and the convenience
// extractors over decoded values. Every decoder is a pure function:
// it never panics and never returns an error; a malformed input yields
// Success=false with a low confidence.
package decoder

import (
	"fmt"
	"regexp"

	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/refdata"
)

// dateCodePattern is the factory+date grammar: two factory letters
// followed by three or four date digits. Anchored, so near-misses fail.
var dateCodePattern = regexp.MustCompile(`^[A-Z]{2}\d{3,4}$`)

// centuryPivot disambiguates two-digit years: 90–99 map to the 1990s,
// everything below to the 2000s. Four-digit date codes did not exist
// before 1990, so the pivot is safe for the whole grammar.
const centuryPivot = 90

// DecodeDateCode validates a factory+date code and resolves factory
// metadata and manufacture year/week. The four-digit segment interleaves
// week and year: digits 1 and 3 are the week, digits 2 and 4 the
// two-digit year. Three-digit codes are a known older layout whose digit
// positions are ambiguous; the factory still resolves, but year and week
// stay unset rather than guessed.
func DecodeDateCode(raw string) model.DecodedValue {
	code := model.NormalizeCode(raw)
	if !dateCodePattern.MatchString(code) {
		return failed(model.KindLVDateCode, raw, "format mismatch")
	}

	factory, ok := refdata.LookupFactory(code[:2])
	if !ok {
		return failed(model.KindLVDateCode, raw, fmt.Sprintf("unknown factory code %q", code[:2]))
	}

	facts := &model.DateCodeFacts{
		FactoryCode:     factory.Code,
		FactoryLocation: factory.Location,
		FactoryCountry:  factory.Country,
	}

	digits := code[2:]
	if len(digits) == 3 {
		return model.DecodedValue{
			IdentifierType: model.KindLVDateCode,
			Success:        true,
			Confidence:     0.5,
			RawValue:       raw,
			DateCode:       facts,
			Note:           "three-digit date segment: factory resolved, year/week ambiguous",
		}
	}

	week := int(digits[0]-'0')*10 + int(digits[2]-'0')
	yy := int(digits[1]-'0')*10 + int(digits[3]-'0')
	if week < 1 || week > 53 {
		return failed(model.KindLVDateCode, raw, fmt.Sprintf("week %d out of range", week))
	}
	if yy >= centuryPivot {
		facts.Year = 1900 + yy
	} else {
		facts.Year = 2000 + yy
	}
	facts.Week = week

	return model.DecodedValue{
		IdentifierType: model.KindLVDateCode,
		Success:        true,
		Confidence:     0.9,
		RawValue:       raw,
		DateCode:       facts,
	}
}

// failed builds the standard failure sentinel for a decoder.
func failed(kind model.IdentifierKind, raw, note string) model.DecodedValue {
	return model.DecodedValue{
		IdentifierType: kind,
		Success:        false,
		Confidence:     0.1,
		RawValue:       raw,
		Note:           note,
	}
}
