package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeText_StripsDiacritics(t *testing.T) {
	assert.Equal(t, "Hermes", NormalizeText("Hermès"))
	assert.Equal(t, "deja vu", NormalizeText("déjà vu"))
}

func TestNormalizeText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "LEVI'S 501", NormalizeText("  LEVI'S \t 501 \n"))
}

func TestNormalizeText_PreservesCase(t *testing.T) {
	assert.Equal(t, "LEVI'S Big E", NormalizeText("LEVI'S Big E"))
}

func TestNormalizeCode_UppercasesAndStripsSpace(t *testing.T) {
	assert.Equal(t, "SD1234", NormalizeCode(" sd 1234 "))
	assert.Equal(t, "CD0989", NormalizeCode("cd0989"))
	assert.Equal(t, "", NormalizeCode("   "))
}
