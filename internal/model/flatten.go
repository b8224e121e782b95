package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// unserializable is the placeholder emitted when a value cannot be
// rendered as JSON (cycles, channels, funcs).
const unserializable = "[unserializable]"

// SafeString renders an arbitrary value as a string without ever
// panicking. Primitives render directly; everything else goes through
// JSON and degrades to a placeholder on failure.
func SafeString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case fmt.Stringer:
		return safeStringer(t)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return unserializable
	}
	return string(b)
}

// safeStringer calls String() under a recover so a misbehaving
// implementation cannot take the decode path down with it.
func safeStringer(s fmt.Stringer) (out string) {
	defer func() {
		if recover() != nil {
			out = unserializable
		}
	}()
	return s.String()
}

// FlattenDecoded renders the active payload of a DecodedValue as a flat
// string-valued map suitable for merging into ExtractedIdentifier.Decoded.
// Unsuccessful decodes flatten to nil.
func FlattenDecoded(dv DecodedValue) map[string]string {
	if !dv.Success {
		return nil
	}

	var payload any
	switch {
	case dv.DateCode != nil:
		payload = dv.DateCode
	case dv.Blindstamp != nil:
		payload = dv.Blindstamp
	case dv.StyleCode != nil:
		payload = dv.StyleCode
	case dv.Reference != nil:
		payload = dv.Reference
	case dv.Denim != nil:
		payload = dv.Denim
	}

	out := map[string]string{
		"identifier_type": string(dv.IdentifierType),
	}
	if dv.Note != "" {
		out["note"] = dv.Note
	}
	if payload == nil {
		return out
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		out["payload"] = unserializable
		return out
	}
	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		out["payload"] = unserializable
		return out
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		out[k] = SafeString(fields[k])
	}
	return out
}

// MergeDecoded merges the flattened payload of dv into existing,
// allocating a map when needed. Caller-supplied keys survive; decode
// output wins on collisions. Unsuccessful decodes leave existing as is.
func MergeDecoded(existing map[string]string, dv DecodedValue) map[string]string {
	flat := FlattenDecoded(dv)
	if flat == nil {
		return existing
	}
	if existing == nil {
		return flat
	}
	for k, v := range flat {
		existing[k] = v
	}
	return existing
}
