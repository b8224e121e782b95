// Package research assembles decode, valuation, and authenticity
// results into marketplace-ready research snapshots. The engines stay
// pure; this package is the caller that merges their outputs.
package research

import (
	"time"

	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
)

// Item is one secondhand good under research: category/brand context
// plus the evidence extracted upstream.
type Item struct {
	Category      model.CategoryID           `json:"category"`
	Brand         string                     `json:"brand,omitempty"`
	Identifiers   []model.ExtractedIdentifier `json:"identifiers,omitempty"`
	ExtractedText []string                   `json:"extracted_text,omitempty"`
	Fields        model.FieldStates          `json:"fields,omitempty"`
}

// Facts are the convenience extractions surfaced on a snapshot, taken
// from the first identifier whose decode yields each fact.
type Facts struct {
	Year                  int             `json:"year,omitempty"`
	Origin                *decoder.Origin `json:"origin,omitempty"`
	DiscontinuedOrVintage bool            `json:"discontinued_or_vintage"`
}

// Snapshot is the merged research result for one item.
type Snapshot struct {
	ID              string                        `json:"id"`
	Category        model.CategoryID              `json:"category"`
	Brand           string                        `json:"brand,omitempty"`
	Identifiers     []model.ExtractedIdentifier   `json:"identifiers"`
	DriverMatches   []model.ValueDriverMatch      `json:"driver_matches"`
	PriceMultiplier float64                       `json:"price_multiplier"`
	Authenticity    model.AuthenticityCheckResult `json:"authenticity"`
	Facts           Facts                         `json:"facts"`
	CreatedAt       time.Time                     `json:"created_at"`
}
