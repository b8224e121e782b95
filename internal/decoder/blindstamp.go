package decoder

import (
	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/refdata"
)

// DecodeBlindstamp resolves a single-letter chronology stamp against the
// three-cycle blindstamp tables. The shape signal comes from upstream
// vision; when it is absent the lookup applies the modern-cycle
// preference documented in refdata.LookupBlindstamp, at reduced
// confidence.
func DecodeBlindstamp(raw string, shape model.StampShape) model.DecodedValue {
	letter := model.NormalizeCode(raw)
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return failed(model.KindBlindstamp, raw, "not a single letter")
	}

	entry, ok := refdata.LookupBlindstamp(letter, shape)
	if !ok {
		return failed(model.KindBlindstamp, raw, "letter not in any chronology cycle")
	}

	confidence := 0.85
	note := ""
	if shape == model.ShapeNone {
		confidence = 0.6
		note = "no stamp shape observed: assumed the more recent cycle"
	}

	return model.DecodedValue{
		IdentifierType: model.KindBlindstamp,
		Success:        true,
		Confidence:     confidence,
		RawValue:       raw,
		Note:           note,
		Blindstamp: &model.BlindstampFacts{
			Letter: letter,
			Shape:  entry.Shape,
			Cycle:  entry.Cycle,
			Year:   entry.Year,
		},
	}
}
