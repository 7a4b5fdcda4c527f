// Package lexicon holds the read-only stopword resource used by the normalizer.
package lexicon

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	_ "embed"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kailas-cloud/docmatch/internal/domain"
)

//go:embed english.txt
var englishStopwords []byte

// Lexicon is an immutable stopword set. Safe for concurrent reads.
type Lexicon struct {
	name        string
	stopwords   map[string]struct{}
	fingerprint string
}

// English returns the built-in English stopword list.
func English() (*Lexicon, error) {
	return Parse("english", bytes.NewReader(englishStopwords))
}

// LoadFile reads a stopword list from disk: one word per line, '#' starts a comment.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("%w: open stopwords %s: %w", domain.ErrResourceUnavailable, path, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(filepath.Base(path), f)
}

// Load returns the file-backed lexicon when path is set, the built-in list otherwise.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return English()
	}
	return LoadFile(path)
}

// Parse builds a Lexicon from r. Words are lower-cased; an empty list is an error.
func Parse(name string, r io.Reader) (*Lexicon, error) {
	words := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := sc.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		w := strings.ToLower(strings.TrimSpace(line))
		if w == "" {
			continue
		}
		words[w] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: read stopwords %s: %w", domain.ErrResourceUnavailable, name, err)
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: stopwords %s is empty", domain.ErrResourceUnavailable, name)
	}

	return &Lexicon{name: name, stopwords: words, fingerprint: fingerprint(words)}, nil
}

func fingerprint(words map[string]struct{}) string {
	sorted := make([]string, 0, len(words))
	for w := range words {
		sorted = append(sorted, w)
	}
	slices.Sort(sorted)

	h := sha256.New()
	for _, w := range sorted {
		h.Write([]byte(w))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil)[:8])
}

// IsStopword reports whether w (already lower-cased) is in the set.
func (l *Lexicon) IsStopword(w string) bool {
	_, ok := l.stopwords[w]
	return ok
}

// Len returns the number of stopwords.
func (l *Lexicon) Len() int {
	if l == nil {
		return 0
	}
	return len(l.stopwords)
}

// Name returns the source the lexicon was loaded from.
func (l *Lexicon) Name() string { return l.name }

// Fingerprint identifies the word set: equal sets share a fingerprint
// regardless of source name, order or comments.
func (l *Lexicon) Fingerprint() string { return l.fingerprint }
