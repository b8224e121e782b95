package model

// CategoryID identifies a resale category. Rule tables and decoder
// routing are scoped per category.
type CategoryID string

const (
	CategoryLuxuryHandbags  CategoryID = "luxury_handbags"
	CategoryLuxuryWatches   CategoryID = "luxury_watches"
	CategoryVintageDenim    CategoryID = "vintage_denim"
	CategorySneakers        CategoryID = "sneakers"
	CategoryDesignerApparel CategoryID = "designer_apparel"
)

// AllCategories lists every known category in routing-priority order.
var AllCategories = []CategoryID{
	CategoryLuxuryHandbags,
	CategoryLuxuryWatches,
	CategoryVintageDenim,
	CategorySneakers,
	CategoryDesignerApparel,
}

// Valid reports whether c is a known category.
func (c CategoryID) Valid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// IdentifierType is the caller-declared type hint on an extracted identifier.
type IdentifierType string

const (
	IdentifierDateCode    IdentifierType = "date_code"
	IdentifierStyleNumber IdentifierType = "style_number"
	IdentifierModelNumber IdentifierType = "model_number"
	IdentifierOther       IdentifierType = "other"
)

// StampShape is the enclosing bracket shape observed around a blindstamp
// letter. The shape disambiguates which chronology cycle the letter
// belongs to; it comes from upstream vision, never from the letter itself.
type StampShape string

const (
	ShapeNone   StampShape = ""
	ShapeCircle StampShape = "circle"
	ShapeSquare StampShape = "square"
)

// ExtractedIdentifier is caller-supplied evidence produced upstream by
// vision/OCR. The engine only reads it and, on a successful decode,
// augments Decoded and revises Confidence.
type ExtractedIdentifier struct {
	Type       IdentifierType    `json:"type"`
	Value      string            `json:"value"`
	Confidence float64           `json:"confidence"`
	Source     string            `json:"source,omitempty"`
	Shape      StampShape        `json:"shape,omitempty"`
	Decoded    map[string]string `json:"decoded,omitempty"`
}
