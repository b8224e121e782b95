package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeDenimText_AllSignals(t *testing.T) {
	dv := AnalyzeDenimText("LEVI'S 501 MADE IN USA SELVEDGE")
	require.True(t, dv.Success)
	require.NotNil(t, dv.Denim)

	assert.True(t, dv.Denim.IsBigE)
	assert.True(t, dv.Denim.Selvedge)
	assert.True(t, dv.Denim.MadeInUSA)
	assert.Equal(t, "pre-1971", dv.Denim.EstimatedEra)
	assert.Len(t, dv.Denim.Signals, 3)
	assert.InDelta(t, 0.89, dv.Confidence, 0.001)
}

func TestAnalyzeDenimText_CaseSensitiveBigE(t *testing.T) {
	// lowercase brand spelling is the modern tab, not a Big E
	dv := AnalyzeDenimText("vintage Levi's selvedge denim jacket")
	require.True(t, dv.Success)
	assert.False(t, dv.Denim.IsBigE)
	assert.True(t, dv.Denim.Selvedge)
}

func TestAnalyzeDenimText_TwoSignalsVintageEra(t *testing.T) {
	dv := AnalyzeDenimText("selvage denim made in usa, excellent condition")
	require.True(t, dv.Success)
	assert.Equal(t, "vintage", dv.Denim.EstimatedEra)
	assert.Len(t, dv.Denim.Signals, 2)
	assert.InDelta(t, 0.71, dv.Confidence, 0.001)
}

func TestAnalyzeDenimText_SingleSignalNoEra(t *testing.T) {
	dv := AnalyzeDenimText("nice selvedge jeans for sale")
	require.True(t, dv.Success)
	assert.Empty(t, dv.Denim.EstimatedEra)
	assert.InDelta(t, 0.53, dv.Confidence, 0.001)
}

func TestAnalyzeDenimText_TooShort(t *testing.T) {
	dv := AnalyzeDenimText("SHORT")
	assert.False(t, dv.Success)
	assert.Contains(t, dv.Note, "minimum length")
}

func TestAnalyzeDenimText_NoSignals(t *testing.T) {
	dv := AnalyzeDenimText("a plain pair of blue jeans with no markings")
	assert.False(t, dv.Success)
	assert.Contains(t, dv.Note, "no denim signals")
}

func TestAnalyzeDenimText_DiacriticsFolded(t *testing.T) {
	// OCR sometimes emits accented characters; folding restores the match
	dv := AnalyzeDenimText("sélvedge denim, made in usa")
	require.True(t, dv.Success)
	assert.True(t, dv.Denim.Selvedge)
}
