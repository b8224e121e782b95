// Package valuation implements the value-driver engine: declarative
// condition rules matched against item field values and aggregated into
// a single bounded price multiplier.
package valuation

import (
	"fmt"
	"regexp"
	"strings"
)

// Condition is a compiled check condition. Conditions are compiled once
// at rule load, not re-parsed per evaluation.
type Condition interface {
	// Match evaluates the condition against a field value. original
	// preserves case (some conditions read capitalization); lower is the
	// case-folded form. Returns a grammar-specific confidence and a
	// human-readable reason on a hit.
	Match(original, lower string) (confidence float64, reason string, ok bool)
}

const (
	containsMatchConfidence = 0.7
	exactMatchConfidence    = 0.9
	partialMatchConfidence  = 0.7
	bigECapConfidence       = 0.85
	bigEMentionConfidence   = 0.6
)

// CompileCondition resolves a check-condition string into one of the
// three supported grammars, tried in fixed priority order:
// "text contains ..." term lists, "is ... or ..." / "includes ..."
// allow-lists, then the bespoke Big E capitalization rule. Anything
// else compiles to a condition that never matches.
func CompileCondition(raw string) Condition {
	lower := strings.ToLower(strings.TrimSpace(raw))

	if rest, ok := strings.CutPrefix(lower, "text contains"); ok {
		if terms := splitTerms(rest); len(terms) > 0 {
			return condTextContains{terms: terms}
		}
		return condNever{}
	}

	if rest, ok := strings.CutPrefix(lower, "is "); ok {
		if values := splitAllowList(rest); len(values) > 0 {
			return condAllowList{values: values}
		}
		return condNever{}
	}
	if rest, ok := strings.CutPrefix(lower, "includes"); ok {
		if values := splitAllowList(rest); len(values) > 0 {
			return condAllowList{values: values}
		}
		return condNever{}
	}

	if strings.Contains(lower, "big e") {
		return condBigETab{}
	}

	return condNever{}
}

// splitTerms extracts comma-separated terms, stripping quotes and
// dropping tokens too short to be meaningful substrings.
func splitTerms(s string) []string {
	var terms []string
	for _, part := range strings.Split(s, ",") {
		term := strings.Trim(strings.TrimSpace(part), `"'`)
		if len(term) <= 1 {
			continue
		}
		terms = append(terms, term)
	}
	return terms
}

// splitAllowList extracts a comma- or "or"-separated allow-list.
func splitAllowList(s string) []string {
	normalized := strings.ReplaceAll(s, " or ", ",")
	return splitTerms(normalized)
}

// condTextContains matches when any term appears as a substring of the
// field value.
type condTextContains struct {
	terms []string
}

func (c condTextContains) Match(_, lower string) (float64, string, bool) {
	for _, term := range c.terms {
		if strings.Contains(lower, term) {
			return containsMatchConfidence, fmt.Sprintf("value contains %q", term), true
		}
	}
	return 0, "", false
}

// condAllowList matches on exact equality at high confidence, or on
// bidirectional containment at medium confidence.
type condAllowList struct {
	values []string
}

func (c condAllowList) Match(_, lower string) (float64, string, bool) {
	trimmed := strings.TrimSpace(lower)
	for _, v := range c.values {
		if trimmed == v {
			return exactMatchConfidence, fmt.Sprintf("value equals %q", v), true
		}
	}
	for _, v := range c.values {
		if strings.Contains(trimmed, v) || strings.Contains(v, trimmed) {
			return partialMatchConfidence, fmt.Sprintf("value overlaps %q", v), true
		}
	}
	return 0, "", false
}

// bigECapPattern matches the brand logo spelled with a capital E in the
// original, non-lowered value, the genuine tab signature.
var bigECapPattern = regexp.MustCompile(`\bLEVI'?S\b`)

// condBigETab is the bespoke denim rule: a genuine capitalization
// marker in the original value scores higher than an explicit textual
// "big e" mention, which may just be seller-added description.
type condBigETab struct{}

func (condBigETab) Match(original, lower string) (float64, string, bool) {
	if !strings.Contains(lower, "levi") && !strings.Contains(lower, "big e") {
		return 0, "", false
	}
	if bigECapPattern.MatchString(original) {
		return bigECapConfidence, "capital-E tab signature present", true
	}
	if strings.Contains(lower, "big e") {
		return bigEMentionConfidence, "explicit big e mention", true
	}
	return 0, "", false
}

// condNever is the compiled form of an unrecognized condition string.
type condNever struct{}

func (condNever) Match(_, _ string) (float64, string, bool) {
	return 0, "", false
}
