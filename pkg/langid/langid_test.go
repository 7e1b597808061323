package langid_test

import (
	"testing"

	"integrated-bots/pkg/langid"
)

func TestDetect(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"Empty", "", "en"},
		{"Whitespace Only", "   ", "en"},
		{"Auto Lowercase", "auto", "en"},
		{"Auto Mixed Case With Spaces", "  AuTo  ", "en"},
		{"Short Code Passthrough", "fr", "fr"},
		{"Short Code Uppercase", "DE", "de"},
		{"English Sentence", "The quick brown fox jumps over the lazy dog near the river bank.", "en"},
		{"Spanish Sentence", "El rápido zorro marrón salta sobre el perro perezoso junto al río.", "es"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := langid.Detect(tc.input); got != tc.want {
				t.Errorf("Detect(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}
