// Package rules assembles the rule tables the engines evaluate: the
// built-in reference data overlaid with externally published rule
// modules. The engines never know where a rule came from; overrides
// are ordinary data, identical in shape to the static defaults.
package rules

import (
	"context"
	"regexp"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/resale-intel/internal/decoder"
	"github.com/sells-group/resale-intel/internal/model"
	"github.com/sells-group/resale-intel/internal/refdata"
)

// OverrideSource supplies externally published rule overrides. The
// implementation may be backed by a file, a Notion database, or a
// cache; the registry only sees plain data.
type OverrideSource interface {
	// FetchDecoderOverrides returns replacement decoder routing for a
	// category/brand, or nil when the defaults apply.
	FetchDecoderOverrides(ctx context.Context, category model.CategoryID, brand string) (decoder.Routing, error)

	// FetchRuleOverrides returns value-driver and marker overrides for
	// a category/brand, or nil when there are none.
	FetchRuleOverrides(ctx context.Context, category model.CategoryID, brand string) (*RuleOverrides, error)
}

// RuleOverrides is the plain-data payload of a rule override fetch.
// Entries whose ID matches a static rule replace it; new IDs append.
type RuleOverrides struct {
	Drivers []model.ValueDriver           `json:"value_drivers,omitempty" yaml:"value_drivers,omitempty"`
	Markers []model.AuthenticityMarkerDef `json:"authenticity_markers,omitempty" yaml:"authenticity_markers,omitempty"`
}

// Registry is the merged, compiled rule set. It is immutable after
// Build and safe for concurrent readers.
type Registry struct {
	drivers []model.ValueDriver
	markers []model.AuthenticityMarkerDef
	routing decoder.Routing
}

// Build merges the static reference tables with overrides from src (if
// any) for the given category/brand, compiles marker patterns, and
// returns the resulting registry. A nil src yields the static defaults.
func Build(ctx context.Context, src OverrideSource, category model.CategoryID, brand string) (*Registry, error) {
	r := &Registry{
		drivers: refdata.StaticValueDrivers(),
		markers: refdata.StaticAuthenticityMarkers(),
		routing: decoder.DefaultRouting(),
	}

	if src != nil {
		routing, err := src.FetchDecoderOverrides(ctx, category, brand)
		if err != nil {
			return nil, eris.Wrap(err, "rules: fetch decoder overrides")
		}
		if routing != nil {
			r.routing = routing
		}

		overrides, err := src.FetchRuleOverrides(ctx, category, brand)
		if err != nil {
			return nil, eris.Wrap(err, "rules: fetch rule overrides")
		}
		if overrides != nil {
			r.drivers = mergeDrivers(r.drivers, overrides.Drivers)
			r.markers = mergeMarkers(r.markers, overrides.Markers)
		}
	}

	compileMarkerPatterns(r.markers)

	zap.L().Debug("rules: registry built",
		zap.String("category", string(category)),
		zap.String("brand", brand),
		zap.Int("drivers", len(r.drivers)),
		zap.Int("markers", len(r.markers)),
		zap.Bool("overridden", src != nil),
	)
	return r, nil
}

// Drivers returns the merged value-driver table.
func (r *Registry) Drivers() []model.ValueDriver { return r.drivers }

// Markers returns the merged, pattern-compiled marker table.
func (r *Registry) Markers() []model.AuthenticityMarkerDef { return r.markers }

// Routing returns the decoder routing table.
func (r *Registry) Routing() decoder.Routing { return r.routing }

func mergeDrivers(base, overrides []model.ValueDriver) []model.ValueDriver {
	index := make(map[string]int, len(base))
	for i, d := range base {
		index[d.ID] = i
	}
	for _, o := range overrides {
		if i, ok := index[o.ID]; ok {
			base[i] = o
			continue
		}
		index[o.ID] = len(base)
		base = append(base, o)
	}
	return base
}

func mergeMarkers(base, overrides []model.AuthenticityMarkerDef) []model.AuthenticityMarkerDef {
	index := make(map[string]int, len(base))
	for i, m := range base {
		index[m.ID] = i
	}
	for _, o := range overrides {
		if i, ok := index[o.ID]; ok {
			base[i] = o
			continue
		}
		index[o.ID] = len(base)
		base = append(base, o)
	}
	return base
}

// compileMarkerPatterns compiles each marker's pattern in place. A
// marker with an invalid pattern degrades to a manual check.
func compileMarkerPatterns(markers []model.AuthenticityMarkerDef) {
	for i := range markers {
		m := &markers[i]
		if m.Pattern == "" || m.CompiledPattern != nil {
			continue
		}
		re, err := regexp.Compile(m.Pattern)
		if err != nil {
			zap.L().Warn("rules: invalid marker pattern, treating as manual check",
				zap.String("marker_id", m.ID),
				zap.String("pattern", m.Pattern),
				zap.Error(err),
			)
			continue
		}
		m.CompiledPattern = re
	}
}
