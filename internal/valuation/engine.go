package valuation

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/resale-intel/internal/model"
)

const (
	// DiminishingFactor damps every value signal after the first:
	// stacking attributes compounds sub-linearly.
	DiminishingFactor = 0.7

	// MaxPriceMultiplier is the hard ceiling on the aggregated
	// multiplier, preventing runaway multiplicative stacking.
	MaxPriceMultiplier = 15.0
)

// compiledDriver pairs a driver record with its pre-compiled condition.
type compiledDriver struct {
	driver model.ValueDriver
	cond   Condition
}

// Engine evaluates value-driver rules against item field states. The
// rule set is compiled once at construction and read-only afterwards,
// so an Engine is safe for concurrent use.
type Engine struct {
	drivers []compiledDriver
}

// NewEngine compiles the given driver records into an Engine.
func NewEngine(drivers []model.ValueDriver) *Engine {
	compiled := make([]compiledDriver, 0, len(drivers))
	for _, d := range drivers {
		compiled = append(compiled, compiledDriver{
			driver: d,
			cond:   CompileCondition(d.CheckCondition),
		})
	}
	return &Engine{drivers: compiled}
}

// DetectValueDrivers matches the category's drivers against the field
// bag and returns all hits, ordered by driver priority descending, then
// confidence descending.
func (e *Engine) DetectValueDrivers(fields model.FieldStates, category model.CategoryID, brand string) []model.ValueDriverMatch {
	var matches []model.ValueDriverMatch

	for _, cd := range e.drivers {
		if cd.driver.CategoryID != category {
			continue
		}
		if !brandApplies(cd.driver.ApplicableBrands, brand) {
			continue
		}

		state, ok := fields[cd.driver.Attribute]
		if !ok || state.Value == nil {
			continue
		}
		original := state.StringValue()
		if original == "" {
			continue
		}

		confidence, reason, hit := cd.cond.Match(original, strings.ToLower(original))
		if !hit {
			continue
		}

		matches = append(matches, model.ValueDriverMatch{
			Driver:       cd.driver,
			MatchedValue: original,
			Confidence:   model.ClampConfidence(confidence),
			Reasoning:    fmt.Sprintf("%s: %s=%q, %s", cd.driver.Name, cd.driver.Attribute, original, reason),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Driver.Priority != matches[j].Driver.Priority {
			return matches[i].Driver.Priority > matches[j].Driver.Priority
		}
		return matches[i].Confidence > matches[j].Confidence
	})

	if len(matches) > 0 {
		zap.L().Debug("valuation: drivers detected",
			zap.String("category", string(category)),
			zap.String("brand", brand),
			zap.Int("matches", len(matches)),
		)
	}
	return matches
}

// brandApplies reports whether a driver's brand scope admits the given
// brand. Brand-agnostic drivers always apply; when no brand is known,
// only brand-agnostic drivers qualify.
func brandApplies(applicable []string, brand string) bool {
	if len(applicable) == 0 {
		return true
	}
	if brand == "" {
		return false
	}
	for _, b := range applicable {
		if strings.EqualFold(b, brand) {
			return true
		}
	}
	return false
}

// CalculateValueMultiplier aggregates driver matches into one bounded
// price multiplier. The highest-impact match contributes at full
// weight; each further match is square-root dampened and discounted by
// DiminishingFactor, so additional signals keep helping but never
// multiply out of control.
func CalculateValueMultiplier(matches []model.ValueDriverMatch) float64 {
	if len(matches) == 0 {
		return 1.0
	}

	ordered := make([]model.ValueDriverMatch, len(matches))
	copy(ordered, matches)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Driver.PriceMultiplier > ordered[j].Driver.PriceMultiplier
	})

	multiplier := 1.0
	for i, m := range ordered {
		pm := m.Driver.PriceMultiplier
		conf := model.ClampConfidence(m.Confidence)
		if i == 0 {
			multiplier *= 1 + (pm-1)*conf
			continue
		}
		multiplier *= 1 + (math.Sqrt(pm)-1)*conf*DiminishingFactor
	}

	return math.Min(multiplier, MaxPriceMultiplier)
}
