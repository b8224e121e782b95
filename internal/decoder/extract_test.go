package decoder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/resale-intel/internal/model"
)

func TestExtractYear_FromDateCode(t *testing.T) {
	year, ok := ExtractYear(model.DecodedValue{
		Success:  true,
		DateCode: &model.DateCodeFacts{Year: 2024},
	})
	require.True(t, ok)
	assert.Equal(t, 2024, year)
}

func TestExtractYear_FromBlindstamp(t *testing.T) {
	year, ok := ExtractYear(model.DecodedValue{
		Success:    true,
		Blindstamp: &model.BlindstampFacts{Year: 1985},
	})
	require.True(t, ok)
	assert.Equal(t, 1985, year)
}

func TestExtractYear_AmbiguousDateCode(t *testing.T) {
	_, ok := ExtractYear(model.DecodedValue{
		Success:  true,
		DateCode: &model.DateCodeFacts{FactoryCode: "SD"},
	})
	assert.False(t, ok)
}

func TestExtractYear_FailureHasNoYear(t *testing.T) {
	_, ok := ExtractYear(model.DecodedValue{
		Success:  false,
		DateCode: &model.DateCodeFacts{Year: 2024},
	})
	assert.False(t, ok)
}

func TestExtractOrigin(t *testing.T) {
	origin := ExtractOrigin(model.DecodedValue{
		Success: true,
		DateCode: &model.DateCodeFacts{
			FactoryLocation: "San Dimas, California",
			FactoryCountry:  "USA",
		},
	})
	require.NotNil(t, origin)
	assert.Equal(t, "USA", origin.Country)

	assert.Nil(t, ExtractOrigin(model.DecodedValue{Success: true}))
}

func TestIsDiscontinuedOrVintage_DenimEra(t *testing.T) {
	assert.True(t, isDiscontinuedOrVintageAt(model.DecodedValue{
		Success: true,
		Denim:   &model.DenimFacts{EstimatedEra: "pre-1971"},
	}, 2026))
}

func TestIsDiscontinuedOrVintage_BigEWithoutEra(t *testing.T) {
	assert.True(t, isDiscontinuedOrVintageAt(model.DecodedValue{
		Success: true,
		Denim:   &model.DenimFacts{IsBigE: true},
	}, 2026))
}

func TestIsDiscontinuedOrVintage_DiscontinuedReference(t *testing.T) {
	assert.True(t, isDiscontinuedOrVintageAt(model.DecodedValue{
		Success:   true,
		Reference: &model.ReferenceFacts{Discontinued: true},
	}, 2026))
}

func TestIsDiscontinuedOrVintage_AgeThreshold(t *testing.T) {
	old := model.DecodedValue{Success: true, DateCode: &model.DateCodeFacts{Year: 2005}}
	recent := model.DecodedValue{Success: true, DateCode: &model.DateCodeFacts{Year: 2006}}

	assert.True(t, isDiscontinuedOrVintageAt(old, 2026))
	assert.False(t, isDiscontinuedOrVintageAt(recent, 2026))
}

func TestIsDiscontinuedOrVintage_FailedDecode(t *testing.T) {
	assert.False(t, isDiscontinuedOrVintageAt(model.DecodedValue{
		Success: false,
		Denim:   &model.DenimFacts{IsBigE: true},
	}, 2026))
}
