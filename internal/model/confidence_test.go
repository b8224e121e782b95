package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampConfidence_WithinRange(t *testing.T) {
	assert.Equal(t, 0.5, ClampConfidence(0.5))
	assert.Equal(t, 0.0, ClampConfidence(0))
	assert.Equal(t, 1.0, ClampConfidence(1))
}

func TestClampConfidence_OutOfRange(t *testing.T) {
	assert.Equal(t, 1.0, ClampConfidence(1.5))
	assert.Equal(t, 0.0, ClampConfidence(-0.3))
}

func TestClampConfidence_NonFinite(t *testing.T) {
	assert.Equal(t, 0.0, ClampConfidence(math.NaN()))
	assert.Equal(t, 0.0, ClampConfidence(math.Inf(1)))
	assert.Equal(t, 0.0, ClampConfidence(math.Inf(-1)))
}

func TestReviseConfidence_TakesMax(t *testing.T) {
	assert.Equal(t, 0.9, ReviseConfidence(0.4, 0.9))
	assert.Equal(t, 0.8, ReviseConfidence(0.8, 0.2))
}

func TestReviseConfidence_ClampsInputs(t *testing.T) {
	assert.Equal(t, 1.0, ReviseConfidence(1.7, 0.2))
	assert.Equal(t, 0.6, ReviseConfidence(math.NaN(), 0.6))
	assert.Equal(t, 0.0, ReviseConfidence(math.Inf(1), math.NaN()))
}
