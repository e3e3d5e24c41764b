package store

import (
	"regexp"
	"strings"
	"testing"
)

var safeIdentifier = regexp.MustCompile(`^[a-z0-9-]{0,50}$`)

func TestSanitize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"nodejs-api", "nodejs-api"},
		{"My API Prompt", "my-api-prompt"},
		{"REACT_Pro!", "react-pro-"},
		{"", ""},
		{"???", "---"},
		{"café étude", "caf---tude"},
		{"../../etc/passwd", "------etc-passwd"},
		{strings.Repeat("a", 80), strings.Repeat("a", 50)},
	}
	for _, tc := range cases {
		got := Sanitize(tc.in)
		if got != tc.want {
			t.Errorf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitize_OutputAlwaysSafe(t *testing.T) {
	inputs := []string{
		"normal-name", "UPPER", "with spaces", "日本語テキスト", "a/b/c", "..",
		strings.Repeat("é", 200), "", "-", "mixed 123 ABC #!", "\x00\x01\x02",
	}
	for _, in := range inputs {
		got := Sanitize(in)
		if !safeIdentifier.MatchString(got) {
			t.Errorf("Sanitize(%q) = %q does not match %s", in, got, safeIdentifier)
		}
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{"My API Prompt", "café", strings.Repeat("x", 80)}
	for _, in := range inputs {
		once := Sanitize(in)
		if twice := Sanitize(once); twice != once {
			t.Errorf("Sanitize not idempotent for %q: %q -> %q", in, once, twice)
		}
	}
}

func TestValidSegment(t *testing.T) {
	valid := []string{"backend", "nodejs-api", "a", "123", strings.Repeat("a", 50)}
	for _, s := range valid {
		if !validSegment(s) {
			t.Errorf("validSegment(%q) = false, want true", s)
		}
	}
	invalid := []string{"", "Backend", "a b", "..", "a/b", strings.Repeat("a", 51)}
	for _, s := range invalid {
		if validSegment(s) {
			t.Errorf("validSegment(%q) = true, want false", s)
		}
	}
}
