package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeReferenceNumber_CatalogHit(t *testing.T) {
	dv := DecodeReferenceNumber("16610")
	require.True(t, dv.Success)
	require.NotNil(t, dv.Reference)
	assert.True(t, dv.Reference.CatalogMatch)
	assert.True(t, dv.Reference.Discontinued)
	assert.Equal(t, "Submariner", dv.Reference.Family)
	assert.Equal(t, 0.9, dv.Confidence)
}

func TestDecodeReferenceNumber_StructuralOnly(t *testing.T) {
	dv := DecodeReferenceNumber("99999")
	require.True(t, dv.Success)
	require.NotNil(t, dv.Reference)
	assert.False(t, dv.Reference.CatalogMatch)
	assert.Equal(t, 0.4, dv.Confidence)
	assert.NotEmpty(t, dv.Note)
}

func TestDecodeReferenceNumber_VariantSuffix(t *testing.T) {
	dv := DecodeReferenceNumber("126610lv")
	require.True(t, dv.Success)
	assert.Equal(t, "126610LV", dv.Reference.Reference)
	assert.True(t, dv.Reference.CatalogMatch)
}

func TestDecodeReferenceNumber_GrammarStrict(t *testing.T) {
	for _, raw := range []string{
		"1234",        // four digits
		"1234567",     // seven digits
		"16610ABCDE",  // five letters
		"A16610",      // leading letter
		"16610-LV",    // punctuation
		"",
	} {
		dv := DecodeReferenceNumber(raw)
		assert.False(t, dv.Success, raw)
	}
}
