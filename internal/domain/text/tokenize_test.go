package text

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"whitespace", " \t\n ", nil},
		{"basic", "hello world", []string{"hello", "world"}},
		{"trailing punctuation", "run, ran!!", []string{"run", ",", "ran", "!!"}},
		{"leading punctuation", "(python)", []string{"(", "python", ")"}},
		{"negation", "don't", []string{"do", "n't"}},
		{"possessive", "Java's", []string{"Java", "'s"}},
		{"curly apostrophe", "we’re", []string{"we", "'re"}},
		{"upper clitic", "CAN'T", []string{"CA", "N'T"}},
		{"hyphen kept", "full-stack", []string{"full-stack"}},
		{"inner period kept", "node.js.", []string{"node.js", "."}},
		{"digits", "123 abc1", []string{"123", "abc1"}},
		{"punctuation only", "--", []string{"--"}},
		{"unicode", "café résumé", []string{"café", "résumé"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsAlpha(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"", false},
		{"python", true},
		{"résumé", true},
		{"abc1", false},
		{"123", false},
		{"full-stack", false},
		{"n't", false},
	}
	for _, tc := range tests {
		if got := IsAlpha(tc.input); got != tc.want {
			t.Errorf("IsAlpha(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
