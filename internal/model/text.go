package model

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// ocrFold strips combining marks after canonical decomposition, so
// accented OCR output ("Hermès", "sélvedge" misreads) compares equal to
// its ASCII form.
var ocrFold = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeText prepares OCR-extracted text for rule matching: trims,
// collapses internal whitespace runs to single spaces, and removes
// diacritics. Case is preserved; some decoders read capitalization as
// a signal.
func NormalizeText(s string) string {
	folded, _, err := transform.String(ocrFold, s)
	if err != nil {
		folded = s
	}
	return strings.Join(strings.Fields(folded), " ")
}

// NormalizeCode uppercases and strips all whitespace from a raw
// identifier value before grammar validation.
func NormalizeCode(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		b.WriteRune(unicode.ToUpper(r))
	}
	return b.String()
}
