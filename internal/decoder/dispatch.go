package decoder

import (
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/resale-intel/internal/model"
)

// Routing orders the decoders tried for each category on the generic
// decode path. The order is deterministic: grammar decoders before the
// free-text analyzer, highest-yield decoder first.
type Routing map[model.CategoryID][]model.IdentifierKind

// DefaultRouting returns the built-in category routing table. Callers
// holding externally published routing overrides pass their own table;
// the dispatcher treats both identically.
func DefaultRouting() Routing {
	return Routing{
		model.CategoryLuxuryHandbags:  {model.KindLVDateCode, model.KindBlindstamp},
		model.CategoryLuxuryWatches:   {model.KindReferenceNumber},
		model.CategorySneakers:        {model.KindStyleCode},
		model.CategoryVintageDenim:    {model.KindDenimAnalysis},
		model.CategoryDesignerApparel: {model.KindStyleCode, model.KindDenimAnalysis},
	}
}

// Dispatcher routes raw identifiers to the right decoder for a category,
// with a declared-type fallback. It holds only immutable routing data,
// so concurrent use needs no coordination.
type Dispatcher struct {
	routing Routing
}

// NewDispatcher creates a Dispatcher. A nil routing table selects the
// built-in default.
func NewDispatcher(routing Routing) *Dispatcher {
	if routing == nil {
		routing = DefaultRouting()
	}
	return &Dispatcher{routing: routing}
}

// DecodeIdentifier resolves one identifier against the category's
// decoder chain, then falls back to dispatch by the declared type.
// Returns nil when nothing matched.
func (d *Dispatcher) DecodeIdentifier(id model.ExtractedIdentifier, category model.CategoryID) *model.DecodedValue {
	value := strings.TrimSpace(id.Value)
	if value == "" {
		return nil
	}

	// Generic category-aware path.
	for _, kind := range d.routing[category] {
		if dv := decodeByKind(kind, value, id.Shape); dv.Success {
			return &dv
		}
	}

	// Declared-type fallback.
	switch id.Type {
	case model.IdentifierDateCode:
		if dv := DecodeDateCode(value); dv.Success {
			return &dv
		}
		if len(value) == 1 {
			if dv := DecodeBlindstamp(value, id.Shape); dv.Success {
				return &dv
			}
		}
	case model.IdentifierStyleNumber:
		if dv := DecodeStyleCode(value); dv.Success {
			return &dv
		}
	case model.IdentifierModelNumber:
		if dv := DecodeReferenceNumber(value); dv.Success {
			return &dv
		}
	case model.IdentifierOther:
		if len(value) > MinDenimTextLen {
			if dv := AnalyzeDenimText(value); dv.Success {
				return &dv
			}
		}
	}

	return nil
}

// DecodeIdentifiers decodes every identifier in the list. Successful
// decodes get the flattened payload merged into Decoded and a revised
// confidence; failures pass through unchanged.
func (d *Dispatcher) DecodeIdentifiers(ids []model.ExtractedIdentifier, category model.CategoryID) []model.ExtractedIdentifier {
	out := make([]model.ExtractedIdentifier, len(ids))
	decoded := 0
	for i, id := range ids {
		if dv := d.DecodeIdentifier(id, category); dv != nil {
			id.Decoded = model.MergeDecoded(id.Decoded, *dv)
			id.Confidence = model.ReviseConfidence(id.Confidence, dv.Confidence)
			decoded++
		}
		out[i] = id
	}

	zap.L().Debug("decoder: batch decode complete",
		zap.String("category", string(category)),
		zap.Int("identifiers", len(ids)),
		zap.Int("decoded", decoded),
	)
	return out
}

// decodeByKind invokes a single decoder by its kind tag.
func decodeByKind(kind model.IdentifierKind, value string, shape model.StampShape) model.DecodedValue {
	switch kind {
	case model.KindLVDateCode:
		return DecodeDateCode(value)
	case model.KindBlindstamp:
		return DecodeBlindstamp(value, shape)
	case model.KindStyleCode:
		return DecodeStyleCode(value)
	case model.KindReferenceNumber:
		return DecodeReferenceNumber(value)
	case model.KindDenimAnalysis:
		return AnalyzeDenimText(value)
	default:
		return model.DecodedValue{IdentifierType: kind, RawValue: value, Confidence: 0}
	}
}
