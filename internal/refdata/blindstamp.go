package refdata

import (
	"strings"

	"github.com/sells-group/resale-intel/internal/model"
)

// BlindstampYear is one entry in a chronology cycle.
type BlindstampYear struct {
	Letter string
	Cycle  int
	Year   int
	Shape  model.StampShape
}

// The blindstamp chronology runs in three successive A–Z cycles. Each
// cycle reuses the full alphabet for a different 26-year calendar range,
// so the letter alone never identifies a year; the enclosing shape
// struck around the letter does.
//
//	cycle 1: 1945–1970, bare letter
//	cycle 2: 1971–1996, letter in a circle
//	cycle 3: 1997–2022, letter in a square
var (
	blindstampCycle1 = buildCycle(1, 1945, model.ShapeNone)
	blindstampCycle2 = buildCycle(2, 1971, model.ShapeCircle)
	blindstampCycle3 = buildCycle(3, 1997, model.ShapeSquare)
)

func buildCycle(cycle, startYear int, shape model.StampShape) map[string]BlindstampYear {
	m := make(map[string]BlindstampYear, 26)
	for i := 0; i < 26; i++ {
		letter := string(rune('A' + i))
		m[letter] = BlindstampYear{
			Letter: letter,
			Cycle:  cycle,
			Year:   startYear + i,
			Shape:  shape,
		}
	}
	return m
}

// LookupBlindstamp resolves a single-letter chronology stamp. The shape
// signal selects the cycle directly. When the caller saw no enclosing
// shape, the circle cycle (cycle 2) is preferred over the bare-letter
// cycle (cycle 1): most live resale inventory is post-1970, so an
// absent signal is far more often a missed shape than a pre-1971 stamp.
// The square cycle is only reachable with an explicit square signal.
func LookupBlindstamp(letter string, shape model.StampShape) (BlindstampYear, bool) {
	key := strings.ToUpper(strings.TrimSpace(letter))
	if len(key) != 1 || key[0] < 'A' || key[0] > 'Z' {
		return BlindstampYear{}, false
	}

	switch shape {
	case model.ShapeCircle:
		entry, ok := blindstampCycle2[key]
		return entry, ok
	case model.ShapeSquare:
		entry, ok := blindstampCycle3[key]
		return entry, ok
	default:
		if entry, ok := blindstampCycle2[key]; ok {
			return entry, ok
		}
		entry, ok := blindstampCycle1[key]
		return entry, ok
	}
}
