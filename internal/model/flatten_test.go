package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type panickyStringer struct{}

func (panickyStringer) String() string { panic("boom") }

func TestSafeString_Primitives(t *testing.T) {
	assert.Equal(t, "", SafeString(nil))
	assert.Equal(t, "hello", SafeString("hello"))
	assert.Equal(t, "true", SafeString(true))
	assert.Equal(t, "42", SafeString(42))
	assert.Equal(t, "42", SafeString(int64(42)))
	assert.Equal(t, "2.5", SafeString(2.5))
}

func TestSafeString_StructGoesJSON(t *testing.T) {
	v := struct {
		A string `json:"a"`
	}{A: "x"}
	assert.Equal(t, `{"a":"x"}`, SafeString(v))
}

func TestSafeString_PanickyStringerDegrades(t *testing.T) {
	assert.Equal(t, "[unserializable]", SafeString(panickyStringer{}))
}

func TestSafeString_UnmarshalableDegrades(t *testing.T) {
	assert.Equal(t, "[unserializable]", SafeString(make(chan int)))
}

func TestFlattenDecoded_FailureIsNil(t *testing.T) {
	dv := DecodedValue{IdentifierType: KindLVDateCode, Success: false}
	assert.Nil(t, FlattenDecoded(dv))
}

func TestFlattenDecoded_DateCodePayload(t *testing.T) {
	dv := DecodedValue{
		IdentifierType: KindLVDateCode,
		Success:        true,
		Confidence:     0.9,
		DateCode: &DateCodeFacts{
			FactoryCode:     "SD",
			FactoryLocation: "San Dimas, California",
			FactoryCountry:  "USA",
			Year:            2024,
			Week:            13,
		},
	}

	flat := FlattenDecoded(dv)
	require.NotNil(t, flat)
	assert.Equal(t, "lv_date_code", flat["identifier_type"])
	assert.Equal(t, "SD", flat["factory_code"])
	assert.Equal(t, "2024", flat["year"])
	assert.Equal(t, "13", flat["week"])
}

func TestFlattenDecoded_NoteCarriedThrough(t *testing.T) {
	dv := DecodedValue{
		IdentifierType: KindReferenceNumber,
		Success:        true,
		Note:           "reference not in catalog: structural match only",
		Reference:      &ReferenceFacts{Reference: "99999"},
	}

	flat := FlattenDecoded(dv)
	require.NotNil(t, flat)
	assert.Equal(t, "reference not in catalog: structural match only", flat["note"])
	assert.Equal(t, "99999", flat["reference"])
	assert.Equal(t, "false", flat["catalog_match"])
}

func TestFlattenDecoded_NoPayloadStillTyped(t *testing.T) {
	dv := DecodedValue{IdentifierType: KindDenimAnalysis, Success: true}
	flat := FlattenDecoded(dv)
	require.NotNil(t, flat)
	assert.Equal(t, "denim_analysis", flat["identifier_type"])
	assert.Len(t, flat, 1)
}

func TestMergeDecoded_AllocatesWhenNil(t *testing.T) {
	dv := DecodedValue{
		IdentifierType: KindLVDateCode,
		Success:        true,
		DateCode:       &DateCodeFacts{FactoryCode: "SD", Year: 2024, Week: 13},
	}

	merged := MergeDecoded(nil, dv)
	require.NotNil(t, merged)
	assert.Equal(t, "2024", merged["year"])
}

func TestMergeDecoded_PreservesExistingKeys(t *testing.T) {
	dv := DecodedValue{
		IdentifierType: KindLVDateCode,
		Success:        true,
		DateCode:       &DateCodeFacts{FactoryCode: "SD", Year: 2024, Week: 13},
	}

	merged := MergeDecoded(map[string]string{
		"ocr_region": "interior tag",
		"year":       "1999",
	}, dv)

	// caller-supplied keys survive; decode output wins on collisions
	assert.Equal(t, "interior tag", merged["ocr_region"])
	assert.Equal(t, "2024", merged["year"])
}

func TestMergeDecoded_FailedDecodeLeavesExisting(t *testing.T) {
	existing := map[string]string{"ocr_region": "caseback"}
	merged := MergeDecoded(existing, DecodedValue{Success: false})
	assert.Equal(t, existing, merged)
}
