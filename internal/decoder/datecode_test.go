package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/resale-intel/internal/model"
)

func TestDecodeDateCode_FourDigitInterleaved(t *testing.T) {
	dv := DecodeDateCode("SD1234")
	require.True(t, dv.Success)
	require.NotNil(t, dv.DateCode)

	// digits 1 and 3 are the week, digits 2 and 4 the year
	assert.Equal(t, 13, dv.DateCode.Week)
	assert.Equal(t, 2024, dv.DateCode.Year)
	assert.Equal(t, "SD", dv.DateCode.FactoryCode)
	assert.Equal(t, "USA", dv.DateCode.FactoryCountry)
	assert.Equal(t, 0.9, dv.Confidence)
}

func TestDecodeDateCode_CenturyPivot(t *testing.T) {
	// week digits 1,0 -> 10; year digits 0,0 -> 2000
	dv := DecodeDateCode("SD1000")
	require.True(t, dv.Success)
	assert.Equal(t, 2000, dv.DateCode.Year)
	assert.Equal(t, 10, dv.DateCode.Week)

	// year digits 9,5 -> 1995
	dv = DecodeDateCode("SD1905")
	require.True(t, dv.Success)
	assert.Equal(t, 1995, dv.DateCode.Year)
	assert.Equal(t, 10, dv.DateCode.Week)
}

func TestDecodeDateCode_ThreeDigitAmbiguous(t *testing.T) {
	dv := DecodeDateCode("SD123")
	require.True(t, dv.Success)
	require.NotNil(t, dv.DateCode)
	assert.Equal(t, 0, dv.DateCode.Year)
	assert.Equal(t, 0, dv.DateCode.Week)
	assert.Equal(t, 0.5, dv.Confidence)
	assert.NotEmpty(t, dv.Note)
}

func TestDecodeDateCode_WeekOutOfRange(t *testing.T) {
	// week digits 6,4 -> 64
	dv := DecodeDateCode("SD6244")
	assert.False(t, dv.Success)
	assert.Equal(t, 0.1, dv.Confidence)
}

func TestDecodeDateCode_UnknownFactory(t *testing.T) {
	dv := DecodeDateCode("ZZ1234")
	assert.False(t, dv.Success)
	assert.Contains(t, dv.Note, "unknown factory")
}

func TestDecodeDateCode_GrammarStrict(t *testing.T) {
	for _, raw := range []string{"S1234", "SDX1234", "SD12", "SD12345", "1234SD", ""} {
		dv := DecodeDateCode(raw)
		assert.False(t, dv.Success, raw)
		assert.Equal(t, model.KindLVDateCode, dv.IdentifierType, raw)
	}
}

func TestDecodeDateCode_NormalizesInput(t *testing.T) {
	dv := DecodeDateCode(" sd 1234 ")
	require.True(t, dv.Success)
	assert.Equal(t, 2024, dv.DateCode.Year)
}
