package decoder

import (
	"regexp"

	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/refdata"
)

// referencePattern is the watch reference grammar: five or six digits
// with up to four trailing variant letters.
var referencePattern = regexp.MustCompile(`^\d{5,6}[A-Z]{0,4}$`)

// DecodeReferenceNumber validates a watch reference number and resolves
// it against the static model catalog. An uncataloged but well-formed
// reference is still a successful structural match, at low confidence.
func DecodeReferenceNumber(raw string) model.DecodedValue {
	ref := model.NormalizeCode(raw)
	if !referencePattern.MatchString(ref) {
		return failed(model.KindReferenceNumber, raw, "format mismatch")
	}

	if m, ok := refdata.LookupWatchReference(ref); ok {
		return model.DecodedValue{
			IdentifierType: model.KindReferenceNumber,
			Success:        true,
			Confidence:     0.9,
			RawValue:       raw,
			Reference: &model.ReferenceFacts{
				Reference:    m.Reference,
				Family:       m.Family,
				Name:         m.Name,
				Material:     m.Material,
				Discontinued: m.Discontinued,
				CatalogMatch: true,
			},
		}
	}

	return model.DecodedValue{
		IdentifierType: model.KindReferenceNumber,
		Success:        true,
		Confidence:     0.4,
		RawValue:       raw,
		Note:           "reference not in catalog: structural match only",
		Reference: &model.ReferenceFacts{
			Reference:    ref,
			CatalogMatch: false,
		},
	}
}
