package text

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// clitics are English contraction suffixes split off their host word.
// Order matters: "n't" must be tried before the apostrophe forms.
var clitics = []string{"n't", "'s", "'re", "'ve", "'ll", "'d", "'m"}

// Tokenize splits text into word-level tokens.
//
// Whitespace separates chunks; leading and trailing punctuation is detached
// into its own token, and English contractions are split from the host word
// ("don't" -> "do", "n't"). Punctuation inside a word ("full-stack", "node.js")
// stays part of the token. Case is preserved.
func Tokenize(s string) []string {
	s = strings.ReplaceAll(s, "’", "'")

	var tokens []string
	for _, chunk := range strings.Fields(s) {
		tokens = appendChunk(tokens, chunk)
	}
	return tokens
}

func appendChunk(tokens []string, chunk string) []string {
	start := strings.IndexFunc(chunk, isWordRune)
	if start < 0 {
		return append(tokens, chunk)
	}
	end := strings.LastIndexFunc(chunk, isWordRune)
	_, size := utf8.DecodeRuneInString(chunk[end:])
	end += size

	if start > 0 {
		tokens = append(tokens, chunk[:start])
	}
	tokens = appendWord(tokens, chunk[start:end])
	if end < len(chunk) {
		tokens = append(tokens, chunk[end:])
	}
	return tokens
}

func appendWord(tokens []string, word string) []string {
	for _, c := range clitics {
		cut := len(word) - len(c)
		if cut > 0 && strings.EqualFold(word[cut:], c) {
			return append(tokens, word[:cut], word[cut:])
		}
	}
	return append(tokens, word)
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// IsAlpha reports whether s is non-empty and made only of letters.
func IsAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
