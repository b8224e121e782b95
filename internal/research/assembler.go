package research

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/resale-intel/internal/authenticity"
	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/rules"
	"github.com/sells-group/resale-intel/internal/valuation"
)

// Assembler runs the full research flow over items. It holds only
// immutable engines built from one rule registry, so concurrent use is
// safe.
type Assembler struct {
	dispatcher *decoder.Dispatcher
	valuation  *valuation.Engine
	auth       *authenticity.Engine
}

// NewAssembler builds an Assembler from a compiled rule registry.
func NewAssembler(reg *rules.Registry) *Assembler {
	return &Assembler{
		dispatcher: decoder.NewDispatcher(reg.Routing()),
		valuation:  valuation.NewEngine(reg.Drivers()),
		auth:       authenticity.NewEngine(reg.Markers()),
	}
}

// Research produces a snapshot for one item: identifiers decoded and
// augmented, value drivers detected and aggregated, authenticity
// assessed, and convenience facts extracted.
func (a *Assembler) Research(item Item) (*Snapshot, error) {
	if !item.Category.Valid() {
		return nil, eris.Errorf("research: unknown category %q", item.Category)
	}

	snapshot := &Snapshot{
		ID:        uuid.New().String(),
		Category:  item.Category,
		Brand:     item.Brand,
		CreatedAt: time.Now().UTC(),
	}

	snapshot.Identifiers = make([]model.ExtractedIdentifier, len(item.Identifiers))
	for i, id := range item.Identifiers {
		dv := a.dispatcher.DecodeIdentifier(id, item.Category)
		if dv != nil {
			id.Decoded = model.MergeDecoded(id.Decoded, *dv)
			id.Confidence = model.ReviseConfidence(id.Confidence, dv.Confidence)
			a.mergeFacts(&snapshot.Facts, *dv)
		}
		snapshot.Identifiers[i] = id
	}

	snapshot.DriverMatches = a.valuation.DetectValueDrivers(item.Fields, item.Category, item.Brand)
	snapshot.PriceMultiplier = valuation.CalculateValueMultiplier(snapshot.DriverMatches)
	snapshot.Authenticity = a.auth.CheckAuthenticity(item.Identifiers, item.ExtractedText, item.Category, item.Brand)

	zap.L().Info("research: snapshot assembled",
		zap.String("snapshot_id", snapshot.ID),
		zap.String("category", string(item.Category)),
		zap.String("brand", item.Brand),
		zap.Int("driver_matches", len(snapshot.DriverMatches)),
		zap.Float64("price_multiplier", snapshot.PriceMultiplier),
		zap.String("assessment", string(snapshot.Authenticity.Assessment)),
	)
	return snapshot, nil
}

// mergeFacts fills snapshot facts from a decoded value, first fact wins.
func (a *Assembler) mergeFacts(facts *Facts, dv model.DecodedValue) {
	if facts.Year == 0 {
		if year, ok := decoder.ExtractYear(dv); ok {
			facts.Year = year
		}
	}
	if facts.Origin == nil {
		facts.Origin = decoder.ExtractOrigin(dv)
	}
	if !facts.DiscontinuedOrVintage {
		facts.DiscontinuedOrVintage = decoder.IsDiscontinuedOrVintage(dv)
	}
}

// ResearchBatch evaluates many items with bounded parallelism. Results
// keep input order; the first error cancels the batch.
func (a *Assembler) ResearchBatch(ctx context.Context, items []Item, concurrency int) ([]*Snapshot, error) {
	if concurrency <= 0 {
		concurrency = 4
	}

	snapshots := make([]*Snapshot, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := a.Research(item)
			if err != nil {
				return eris.Wrapf(err, "research: item %d", i)
			}
			snapshots[i] = s
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return snapshots, nil
}
