package model

import "regexp"

// ValueDriver is a declarative rule describing an attribute that
// materially increases resale value. Drivers are plain data interpreted
// by the valuation engine; new brand rules are added as records, not code.
type ValueDriver struct {
	ID               string     `json:"id" yaml:"id"`
	Name             string     `json:"name" yaml:"name"`
	Attribute        string     `json:"attribute" yaml:"attribute"`
	CategoryID       CategoryID `json:"category_id" yaml:"category_id"`
	ApplicableBrands []string   `json:"applicable_brands,omitempty" yaml:"applicable_brands,omitempty"`
	CheckCondition   string     `json:"check_condition" yaml:"check_condition"`
	PriceMultiplier  float64    `json:"price_multiplier" yaml:"price_multiplier"`
	Priority         int        `json:"priority" yaml:"priority"`
}

// ValueDriverMatch is a per-evaluation result for one driver.
type ValueDriverMatch struct {
	Driver       ValueDriver `json:"driver"`
	MatchedValue string      `json:"matched_value"`
	Confidence   float64     `json:"confidence"`
	Reasoning    string      `json:"reasoning"`
}

// MarkerImportance weights an authenticity marker in aggregation.
type MarkerImportance string

const (
	ImportanceCritical  MarkerImportance = "critical"
	ImportanceImportant MarkerImportance = "important"
	ImportanceHelpful   MarkerImportance = "helpful"
)

// Weight returns the aggregation weight for the importance level
// (critical=3, important=2, helpful=1). Unknown levels weigh 1.
func (m MarkerImportance) Weight() float64 {
	switch m {
	case ImportanceCritical:
		return 3
	case ImportanceImportant:
		return 2
	default:
		return 1
	}
}

// AuthenticityMarkerDef is a declarative authenticity rule. Markers with
// no Pattern require manual review; IndicatesAuthentic decides whether a
// pattern hit is a good or a bad sign.
type AuthenticityMarkerDef struct {
	ID                 string           `json:"id" yaml:"id"`
	Name               string           `json:"name" yaml:"name"`
	Brands             []string         `json:"brands,omitempty" yaml:"brands,omitempty"`
	CategoryID         CategoryID       `json:"category_id" yaml:"category_id"`
	CheckDescription   string           `json:"check_description" yaml:"check_description"`
	Importance         MarkerImportance `json:"importance" yaml:"importance"`
	Pattern            string           `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	IndicatesAuthentic bool             `json:"indicates_authentic" yaml:"indicates_authentic"`

	// CompiledPattern is built from Pattern at registry load.
	CompiledPattern *regexp.Regexp `json:"-" yaml:"-"`
}

// AuthenticityMarkerCheckResult is the per-marker outcome of a check.
type AuthenticityMarkerCheckResult struct {
	Marker       AuthenticityMarkerDef `json:"marker"`
	Passed       bool                  `json:"passed"`
	Confidence   float64               `json:"confidence"`
	Details      string                `json:"details"`
	CheckedValue string                `json:"checked_value,omitempty"`
}

// Assessment is the categorical trust outcome of an authenticity check.
type Assessment string

const (
	AssessmentLikelyAuthentic  Assessment = "likely_authentic"
	AssessmentUncertain        Assessment = "uncertain"
	AssessmentLikelyFake       Assessment = "likely_fake"
	AssessmentInsufficientData Assessment = "insufficient_data"
)

// AuthenticityCheckResult is the aggregate outcome over all markers.
type AuthenticityCheckResult struct {
	Assessment     Assessment                      `json:"assessment"`
	Confidence     float64                         `json:"confidence"`
	MarkersChecked []AuthenticityMarkerCheckResult `json:"markers_checked"`
	Summary        string                          `json:"summary"`
	Warnings       []string                        `json:"warnings,omitempty"`
}
