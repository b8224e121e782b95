package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/resale-intel/internal/model"
)

func TestLookupBlindstamp_CircleSelectsCycle2(t *testing.T) {
	entry, ok := LookupBlindstamp("A", model.ShapeCircle)
	require.True(t, ok)
	assert.Equal(t, 2, entry.Cycle)
	assert.Equal(t, 1971, entry.Year)
}

func TestLookupBlindstamp_SquareSelectsCycle3(t *testing.T) {
	entry, ok := LookupBlindstamp("Z", model.ShapeSquare)
	require.True(t, ok)
	assert.Equal(t, 3, entry.Cycle)
	assert.Equal(t, 2022, entry.Year)
}

func TestLookupBlindstamp_NoShapePrefersCycle2(t *testing.T) {
	entry, ok := LookupBlindstamp("M", model.ShapeNone)
	require.True(t, ok)
	assert.Equal(t, 2, entry.Cycle)
	assert.Equal(t, 1971+12, entry.Year)
}

func TestLookupBlindstamp_CaseAndWhitespaceTolerant(t *testing.T) {
	entry, ok := LookupBlindstamp(" q ", model.ShapeCircle)
	require.True(t, ok)
	assert.Equal(t, "Q", entry.Letter)
}

func TestLookupBlindstamp_RejectsNonLetters(t *testing.T) {
	_, ok := LookupBlindstamp("1", model.ShapeNone)
	assert.False(t, ok)

	_, ok = LookupBlindstamp("AB", model.ShapeCircle)
	assert.False(t, ok)

	_, ok = LookupBlindstamp("", model.ShapeSquare)
	assert.False(t, ok)
}

func TestCyclesSpanTheFullAlphabet(t *testing.T) {
	for r := 'A'; r <= 'Z'; r++ {
		letter := string(r)
		c2, ok := LookupBlindstamp(letter, model.ShapeCircle)
		require.True(t, ok, letter)
		c3, ok := LookupBlindstamp(letter, model.ShapeSquare)
		require.True(t, ok, letter)
		assert.Equal(t, 26, c3.Year-c2.Year)
	}
}
