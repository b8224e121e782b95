package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/resale-intel/internal/model"
)

func TestDispatcher_CategoryChain(t *testing.T) {
	d := NewDispatcher(nil)

	dv := d.DecodeIdentifier(model.ExtractedIdentifier{Value: "SD1234"}, model.CategoryLuxuryHandbags)
	require.NotNil(t, dv)
	assert.Equal(t, model.KindLVDateCode, dv.IdentifierType)

	// single letter falls through the date-code decoder to the blindstamp decoder
	dv = d.DecodeIdentifier(model.ExtractedIdentifier{Value: "R", Shape: model.ShapeCircle}, model.CategoryLuxuryHandbags)
	require.NotNil(t, dv)
	assert.Equal(t, model.KindBlindstamp, dv.IdentifierType)
}

func TestDispatcher_EmptyValue(t *testing.T) {
	d := NewDispatcher(nil)
	assert.Nil(t, d.DecodeIdentifier(model.ExtractedIdentifier{Value: "   "}, model.CategoryLuxuryHandbags))
}

func TestDispatcher_NoMatchReturnsNil(t *testing.T) {
	d := NewDispatcher(nil)
	assert.Nil(t, d.DecodeIdentifier(model.ExtractedIdentifier{Value: "garbage!!"}, model.CategoryLuxuryWatches))
}

func TestDispatcher_TypeFallback(t *testing.T) {
	d := NewDispatcher(nil)

	// style code presented under a category that does not route to it
	dv := d.DecodeIdentifier(model.ExtractedIdentifier{
		Type:  model.IdentifierStyleNumber,
		Value: "CD0989-100",
	}, model.CategoryLuxuryHandbags)
	require.NotNil(t, dv)
	assert.Equal(t, model.KindStyleCode, dv.IdentifierType)

	dv = d.DecodeIdentifier(model.ExtractedIdentifier{
		Type:  model.IdentifierModelNumber,
		Value: "16610",
	}, model.CategoryLuxuryHandbags)
	require.NotNil(t, dv)
	assert.Equal(t, model.KindReferenceNumber, dv.IdentifierType)
}

func TestDispatcher_OtherRoutesToDenimOnlyWhenLong(t *testing.T) {
	d := NewDispatcher(nil)

	dv := d.DecodeIdentifier(model.ExtractedIdentifier{
		Type:  model.IdentifierOther,
		Value: "LEVI'S 501 MADE IN USA SELVEDGE",
	}, model.CategoryLuxuryWatches)
	require.NotNil(t, dv)
	assert.Equal(t, model.KindDenimAnalysis, dv.IdentifierType)

	assert.Nil(t, d.DecodeIdentifier(model.ExtractedIdentifier{
		Type:  model.IdentifierOther,
		Value: "SHORT",
	}, model.CategoryLuxuryWatches))
}

func TestDispatcher_CustomRouting(t *testing.T) {
	routing := Routing{
		model.CategoryLuxuryHandbags: {model.KindStyleCode},
	}
	d := NewDispatcher(routing)

	// the custom table routes handbags to style codes only
	assert.Nil(t, d.DecodeIdentifier(model.ExtractedIdentifier{Value: "SD1234"}, model.CategoryLuxuryHandbags))

	dv := d.DecodeIdentifier(model.ExtractedIdentifier{Value: "CD0989-100"}, model.CategoryLuxuryHandbags)
	require.NotNil(t, dv)
	assert.Equal(t, model.KindStyleCode, dv.IdentifierType)
}

func TestDecodeIdentifiers_MergesDecodedAndRevisesConfidence(t *testing.T) {
	d := NewDispatcher(nil)

	out := d.DecodeIdentifiers([]model.ExtractedIdentifier{
		{Type: model.IdentifierDateCode, Value: "SD1234", Confidence: 0.4},
		{Type: model.IdentifierOther, Value: "nonsense", Confidence: 0.3},
	}, model.CategoryLuxuryHandbags)

	require.Len(t, out, 2)
	require.NotNil(t, out[0].Decoded)
	assert.Equal(t, "2024", out[0].Decoded["year"])
	assert.Equal(t, 0.9, out[0].Confidence)

	// undecodable identifier passes through unchanged
	assert.Nil(t, out[1].Decoded)
	assert.Equal(t, 0.3, out[1].Confidence)
}

func TestDecodeIdentifiers_PreservesCallerDecodedKeys(t *testing.T) {
	d := NewDispatcher(nil)

	out := d.DecodeIdentifiers([]model.ExtractedIdentifier{{
		Type:       model.IdentifierDateCode,
		Value:      "SD1234",
		Confidence: 0.4,
		Decoded: map[string]string{
			"ocr_region": "interior tag",
			"year":       "1999",
		},
	}}, model.CategoryLuxuryHandbags)

	require.Len(t, out, 1)
	// upstream annotations survive the decode; decode output wins on overlap
	assert.Equal(t, "interior tag", out[0].Decoded["ocr_region"])
	assert.Equal(t, "2024", out[0].Decoded["year"])
	assert.Equal(t, "13", out[0].Decoded["week"])
}
