package model

import "fmt"

// FieldState is a single field value in the caller's field-state bag,
// as resolved by the upstream extraction pipeline.
type FieldState struct {
	Value      any     `json:"value"`
	Confidence float64 `json:"confidence"`
}

// FieldStates maps field name to its resolved state.
type FieldStates map[string]FieldState

// StringValue renders the field's value as a string for rule matching.
// Nil values render empty.
func (f FieldState) StringValue() string {
	if f.Value == nil {
		return ""
	}
	if s, ok := f.Value.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", f.Value)
}
