package decoder

import (
	"regexp"
	"strings"

	"github.com/sells-group/resale-intel/internal/model"
)

// MinDenimTextLen is the minimum input length for the free-text denim
// analyzer. Shorter strings are too likely to false-positive on partial
// words, so the dispatcher refuses to route them here at all.
const MinDenimTextLen = 10

// bigEPattern matches the brand logo spelled with a capital E, the
// pre-1971 "Big E" tab signature. Case matters: the modern tab reads
// "Levi's", so the match runs against the original, non-lowered text.
var bigEPattern = regexp.MustCompile(`\bLEVI'?S\b`)

// AnalyzeDenimText scans unstructured text for independent vintage-denim
// signals and aggregates them into one decoded fact. Unlike the grammar
// decoders, confidence here scales with how many signals fired, not with
// pattern exactness.
func AnalyzeDenimText(raw string) model.DecodedValue {
	text := model.NormalizeText(raw)
	if len(text) <= MinDenimTextLen {
		return failed(model.KindDenimAnalysis, raw, "text below minimum length")
	}
	lower := strings.ToLower(text)

	facts := &model.DenimFacts{}
	if bigEPattern.MatchString(text) {
		facts.IsBigE = true
		facts.Signals = append(facts.Signals, "big_e_tab")
	}
	if strings.Contains(lower, "selvedge") || strings.Contains(lower, "selvage") {
		facts.Selvedge = true
		facts.Signals = append(facts.Signals, "selvedge")
	}
	if strings.Contains(lower, "made in usa") {
		facts.MadeInUSA = true
		facts.Signals = append(facts.Signals, "made_in_usa")
	}

	if len(facts.Signals) == 0 {
		return failed(model.KindDenimAnalysis, raw, "no denim signals found")
	}

	switch {
	case facts.IsBigE:
		facts.EstimatedEra = "pre-1971"
	case len(facts.Signals) >= 2:
		facts.EstimatedEra = "vintage"
	}

	return model.DecodedValue{
		IdentifierType: model.KindDenimAnalysis,
		Success:        true,
		Confidence:     model.ClampConfidence(0.35 + 0.18*float64(len(facts.Signals))),
		RawValue:       raw,
		Denim:          facts,
	}
}
