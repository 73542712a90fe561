package jsonval

import (
	"encoding/json"
	"testing"
)

func TestDecodeObjectRejectsNonObjects(t *testing.T) {
	for _, input := range []string{`[]`, `"stack"`, `42`, `null`, `{"a":1} {}`, `{"stack":"a"}}`, `{"stack":"a"}]`, `{`} {
		if _, err := DecodeObject([]byte(input)); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
	obj, err := DecodeObject([]byte(`{"stack":"env/dev/app","hasChanges":true}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if obj.String("stack") != "env/dev/app" || !obj.Bool("hasChanges") {
		t.Fatalf("unexpected object: %#v", obj)
	}
}

func TestTruthy(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{"", false},
		{"no", true},
		{json.Number("0"), false},
		{json.Number("0.0"), false},
		{json.Number("3"), true},
		{[]any{}, false},
		{[]any{1}, true},
		{map[string]any{}, false},
		{map[string]any{"a": 1}, true},
	}
	for _, tt := range tests {
		if got := Truthy(tt.in); got != tt.want {
			t.Fatalf("Truthy(%#v)=%v want %v", tt.in, got, tt.want)
		}
	}
}

func TestTextKeepsNumberLiterals(t *testing.T) {
	obj, err := DecodeObject([]byte(`{"version":1.0,"name":true,"list":[1,"a"]}`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := obj.String("version"); got != "1.0" {
		t.Fatalf("version text=%q", got)
	}
	if got := obj.String("name"); got != "True" {
		t.Fatalf("bool text=%q", got)
	}
	if got := obj.String("list"); got != `[1,"a"]` {
		t.Fatalf("list text=%q", got)
	}
	if got := obj.StringOr("missing", "-"); got != "-" {
		t.Fatalf("fallback=%q", got)
	}
}

func TestTextRendersNumbersLikePython(t *testing.T) {
	tests := map[string]string{
		"7":                    "7",
		"-0":                   "0",
		"12345678901234567890": "12345678901234567890",
		"1.0":                  "1.0",
		"1.50":                 "1.5",
		"1e2":                  "100.0",
		"2E0":                  "2.0",
		"-0.0":                 "-0.0",
		"0.0001":               "0.0001",
		"0.00001":              "1e-05",
		"1.5e-7":               "1.5e-07",
		"1e15":                 "1000000000000000.0",
		"1e16":                 "1e+16",
		"1.25e100":             "1.25e+100",
		"1e400":                "inf",
		"-1e400":               "-inf",
	}
	for in, want := range tests {
		if got := Text(json.Number(in)); got != want {
			t.Fatalf("Text(%s)=%q want %q", in, got, want)
		}
	}
}

func TestLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`[]`, 0},
		{`["a","b","c"]`, 3},
		{`{"a":1,"b":2}`, 2},
		{`"héllo"`, 5},
		{`7`, 0},
		{`null`, 0},
	}
	for _, tt := range tests {
		got, err := Len([]byte(tt.in))
		if err != nil {
			t.Fatalf("Len(%s): %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("Len(%s)=%d want %d", tt.in, got, tt.want)
		}
	}
	for _, input := range []string{`[1,`, `[1]]`, `{"a":1}}`, `[] x`} {
		if _, err := Len([]byte(input)); err == nil {
			t.Fatalf("expected error for %q", input)
		}
	}
}
