package model

import "math"

// ClampConfidence normalizes a confidence value to [0,1]. Non-finite
// inputs (NaN, ±Inf) are coerced to 0 rather than propagated.
func ClampConfidence(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Min(1, math.Max(0, v))
}

// ReviseConfidence merges an original identifier confidence with a
// decoder's confidence: the max of the two, clamped.
func ReviseConfidence(original, decoded float64) float64 {
	return ClampConfidence(math.Max(ClampConfidence(original), ClampConfidence(decoded)))
}
