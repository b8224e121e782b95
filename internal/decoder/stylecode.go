package decoder

import (
	"regexp"

	"github.com/sells-group/resale-intel/internal/model"
)

// styleCodePattern is the sneaker style-code grammar: two letters, four
// digits, a hyphen, and a three-digit colorway suffix.
var styleCodePattern = regexp.MustCompile(`^[A-Z]{2}\d{4}-\d{3}$`)

// DecodeStyleCode validates an alphanumeric style code. The code itself
// is the structured fact; a valid code needs no further decomposition.
func DecodeStyleCode(raw string) model.DecodedValue {
	code := model.NormalizeCode(raw)
	if !styleCodePattern.MatchString(code) {
		return failed(model.KindStyleCode, raw, "format mismatch")
	}

	return model.DecodedValue{
		IdentifierType: model.KindStyleCode,
		Success:        true,
		Confidence:     0.9,
		RawValue:       raw,
		StyleCode:      &model.StyleCodeFacts{Code: code},
	}
}
