// Package authenticity implements the marker-based trust assessment:
// declarative marker definitions matched against identifiers and
// extracted text, weighted by importance, and folded into a categorical
// assessment.
package authenticity

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/sells-group/resale-intel/internal/model"
)

const (
	// manualCheckConfidence is assigned to markers without a pattern:
	// they get the benefit of the doubt pending manual review.
	manualCheckConfidence = 0.5

	// patternMissConfidence is assigned when a marker's pattern matched
	// nothing anywhere.
	patternMissConfidence = 0.3

	// patternHitConfidence is assigned when a marker's pattern matched
	// an identifier or text string.
	patternHitConfidence = 0.8

	// Assessment thresholds. Policy constants, not learned.
	authenticScoreThreshold = 0.8
	authenticPassRatio      = 0.8
	uncertainScoreThreshold = 0.5
)

// Engine checks authenticity markers. The marker set is fixed at
// construction (patterns already compiled by the rule registry) and
// read-only afterwards.
type Engine struct {
	markers []model.AuthenticityMarkerDef
}

// NewEngine creates an Engine over a compiled marker set.
func NewEngine(markers []model.AuthenticityMarkerDef) *Engine {
	return &Engine{markers: markers}
}

// CheckAuthenticity evaluates every marker applicable to the category
// and brand against the item's identifiers and extracted text, and
// aggregates the outcomes into a single assessment.
func (e *Engine) CheckAuthenticity(identifiers []model.ExtractedIdentifier, extractedText []string, category model.CategoryID, brand string) model.AuthenticityCheckResult {
	markers := e.gatherMarkers(category, brand)
	if len(markers) == 0 {
		return model.AuthenticityCheckResult{
			Assessment:     model.AssessmentInsufficientData,
			Confidence:     0,
			MarkersChecked: []model.AuthenticityMarkerCheckResult{},
			Summary:        "no applicable authenticity markers for this category and brand",
		}
	}

	var (
		checked        []model.AuthenticityMarkerCheckResult
		warnings       []string
		criticalFailed int
		passedCount    int
		failedCount    int
		weightedScore  float64
		totalWeight    float64
	)

	for _, marker := range markers {
		result := checkMarker(marker, identifiers, extractedText)
		checked = append(checked, result)

		totalWeight += marker.Importance.Weight()
		if result.Passed {
			passedCount++
			weightedScore += marker.Importance.Weight() * result.Confidence
		} else {
			failedCount++
			if marker.Importance == model.ImportanceCritical {
				criticalFailed++
				warnings = append(warnings, fmt.Sprintf("critical marker failed: %s (%s)", marker.Name, result.Details))
			}
		}
	}

	normalizedScore := 0.0
	if totalWeight > 0 {
		normalizedScore = weightedScore / totalWeight
	}
	normalizedScore = model.ClampConfidence(normalizedScore)

	result := model.AuthenticityCheckResult{
		Confidence:     normalizedScore,
		MarkersChecked: checked,
		Warnings:       warnings,
	}

	passRatio := float64(passedCount) / float64(len(markers))
	switch {
	case criticalFailed > 0:
		result.Assessment = model.AssessmentLikelyFake
		result.Summary = fmt.Sprintf("%d critical marker(s) failed out of %d checked", criticalFailed, len(markers))
	case normalizedScore >= authenticScoreThreshold && passRatio >= authenticPassRatio:
		result.Assessment = model.AssessmentLikelyAuthentic
		result.Summary = fmt.Sprintf("%d of %d markers passed with strong weighted score", passedCount, len(markers))
	case normalizedScore >= uncertainScoreThreshold:
		result.Assessment = model.AssessmentUncertain
		result.Summary = fmt.Sprintf("mixed signals: %d of %d markers passed", passedCount, len(markers))
	case passedCount == 0 && failedCount == 0:
		result.Assessment = model.AssessmentInsufficientData
		result.Summary = "markers produced no verifiable outcome"
	default:
		result.Assessment = model.AssessmentLikelyFake
		result.Summary = fmt.Sprintf("weighted score %.2f below uncertainty threshold", normalizedScore)
	}

	zap.L().Debug("authenticity: check complete",
		zap.String("category", string(category)),
		zap.String("brand", brand),
		zap.String("assessment", string(result.Assessment)),
		zap.Int("markers", len(markers)),
		zap.Int("passed", passedCount),
	)
	return result
}

// gatherMarkers selects category markers plus brand markers,
// deduplicated by ID.
func (e *Engine) gatherMarkers(category model.CategoryID, brand string) []model.AuthenticityMarkerDef {
	seen := make(map[string]bool)
	var out []model.AuthenticityMarkerDef
	for _, m := range e.markers {
		if m.CategoryID != category && !brandMatches(m.Brands, brand) {
			continue
		}
		if seen[m.ID] {
			continue
		}
		seen[m.ID] = true
		out = append(out, m)
	}
	return out
}

func brandMatches(brands []string, brand string) bool {
	if brand == "" {
		return false
	}
	for _, b := range brands {
		if strings.EqualFold(b, brand) {
			return true
		}
	}
	return false
}

// checkMarker evaluates one marker. Markers without a pattern always
// pass at manual-review confidence. Pattern markers test identifiers in
// input order, then text strings in input order; the first hit wins,
// and whether a hit passes is decided by IndicatesAuthentic.
func checkMarker(marker model.AuthenticityMarkerDef, identifiers []model.ExtractedIdentifier, extractedText []string) model.AuthenticityMarkerCheckResult {
	if marker.CompiledPattern == nil {
		return model.AuthenticityMarkerCheckResult{
			Marker:     marker,
			Passed:     true,
			Confidence: manualCheckConfidence,
			Details:    "manual check required: " + marker.CheckDescription,
		}
	}

	for _, id := range identifiers {
		if marker.CompiledPattern.MatchString(id.Value) {
			return patternHit(marker, id.Value)
		}
	}
	for _, text := range extractedText {
		if marker.CompiledPattern.MatchString(text) {
			return patternHit(marker, text)
		}
	}

	return model.AuthenticityMarkerCheckResult{
		Marker:     marker,
		Passed:     false,
		Confidence: patternMissConfidence,
		Details:    "pattern not found",
	}
}

func patternHit(marker model.AuthenticityMarkerDef, value string) model.AuthenticityMarkerCheckResult {
	details := "pattern matched"
	if !marker.IndicatesAuthentic {
		details = "counterfeit indicator matched"
	}
	return model.AuthenticityMarkerCheckResult{
		Marker:       marker,
		Passed:       marker.IndicatesAuthentic,
		Confidence:   patternHitConfidence,
		Details:      details,
		CheckedValue: value,
	}
}
