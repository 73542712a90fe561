// jsonval.go coerces loosely-typed decoded JSON values into the strings and
// booleans the summary tools work with.
package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// Object is a decoded JSON object. Numbers are kept as json.Number so integer
// literals survive at any size.
type Object map[string]any

// DecodeObject parses data as a single JSON object. Arrays, scalars and
// trailing garbage are rejected.
func DecodeObject(data []byte) (Object, error) {
	raw, err := decodeOne(data)
	if err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected JSON object, got %s", kind(raw))
	}
	return Object(obj), nil
}

// decodeOne decodes exactly one JSON value; anything but whitespace after it
// is an error.
func decodeOne(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after JSON value")
	}
	return raw, nil
}

// Truthy reports whether v is a "true-ish" JSON value: anything except null,
// false, zero, the empty string, and empty arrays or objects.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case json.Number:
		f, err := t.Float64()
		return err != nil || f != 0
	case float64:
		return t != 0
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	default:
		return true
	}
}

// Text renders v as display text. Strings pass through, numbers render as in
// Python (integers verbatim, floats in shortest repr form), booleans render as
// True/False, composite values as compact JSON.
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return numberText(t)
	case bool:
		if t {
			return "True"
		}
		return "False"
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return fmt.Sprint(t)
		}
		return string(b)
	}
}

// numberText prints integer literals as written and floats the way Python's
// repr does: shortest round-trip digits, a trailing ".0" for whole values, and
// exponent notation below 1e-4 or from 1e16 up.
func numberText(n json.Number) string {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		if lit == "-0" {
			return "0"
		}
		return lit
	}
	f, err := strconv.ParseFloat(lit, 64)
	if math.IsInf(f, 1) {
		return "inf"
	}
	if math.IsInf(f, -1) {
		return "-inf"
	}
	if err != nil {
		return lit
	}
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.LastIndexByte(sci, 'e')+1:])
	if err != nil || exp < -4 || exp >= 16 {
		return sci
	}
	fixed := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(fixed, ".") {
		fixed += ".0"
	}
	return fixed
}

// Or returns Text(v) when v is truthy and fallback otherwise.
func Or(v any, fallback string) string {
	if !Truthy(v) {
		return fallback
	}
	return Text(v)
}

// String returns the text of key, or "" when the key is missing.
func (o Object) String(key string) string {
	return Text(o[key])
}

// StringOr returns the text of key when it is truthy, fallback otherwise.
func (o Object) StringOr(key, fallback string) string {
	return Or(o[key], fallback)
}

// TrimmedOr is StringOr followed by whitespace trimming.
func (o Object) TrimmedOr(key, fallback string) string {
	return strings.TrimSpace(o.StringOr(key, fallback))
}

// Bool returns the truthiness of key.
func (o Object) Bool(key string) bool {
	return Truthy(o[key])
}

// Len reports the size of a collection-like JSON document: elements of an
// array, keys of an object, characters of a string. Anything else is 0.
func Len(data []byte) (int, error) {
	raw, err := decodeOne(data)
	if err != nil {
		return 0, err
	}
	switch t := raw.(type) {
	case []any:
		return len(t), nil
	case map[string]any:
		return len(t), nil
	case string:
		return len([]rune(t)), nil
	default:
		return 0, nil
	}
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
