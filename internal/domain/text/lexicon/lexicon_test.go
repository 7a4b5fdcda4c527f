package lexicon

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kailas-cloud/docmatch/internal/domain"
)

func TestEnglish(t *testing.T) {
	l, err := English()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 179 {
		t.Errorf("Len() = %d, want 179", l.Len())
	}
	for _, w := range []string{"the", "and", "don't", "wouldn't", "i"} {
		if !l.IsStopword(w) {
			t.Errorf("expected %q to be a stopword", w)
		}
	}
	for _, w := range []string{"python", "engineer", "The"} {
		if l.IsStopword(w) {
			t.Errorf("expected %q not to be a stopword", w)
		}
	}
}

func TestParse_CommentsAndCase(t *testing.T) {
	l, err := Parse("inline", strings.NewReader("# header\nFoo\n  bar  # trailing\n\nbaz\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}
	if !l.IsStopword("foo") || !l.IsStopword("bar") || !l.IsStopword("baz") {
		t.Error("expected foo, bar, baz to be stopwords")
	}
	if l.Name() != "inline" {
		t.Errorf("Name() = %q", l.Name())
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := Parse("empty", strings.NewReader("# nothing here\n\n"))
	if !errors.Is(err, domain.ErrResourceUnavailable) {
		t.Fatalf("expected ErrResourceUnavailable, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.txt")
	if err := os.WriteFile(path, []byte("alpha\nbeta\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	l, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Len() != 2 {
		t.Errorf("Len() = %d, want 2", l.Len())
	}
	if l.Name() != "custom.txt" {
		t.Errorf("Name() = %q", l.Name())
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if !errors.Is(err, domain.ErrResourceUnavailable) {
		t.Fatalf("expected ErrResourceUnavailable, got %v", err)
	}
}

func TestLoad_DefaultIsEnglish(t *testing.T) {
	l, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.Name() != "english" {
		t.Errorf("Name() = %q, want english", l.Name())
	}
}

func TestLen_Nil(t *testing.T) {
	var l *Lexicon
	if l.Len() != 0 {
		t.Error("nil lexicon should have zero length")
	}
}

func TestFingerprint(t *testing.T) {
	a, err := Parse("a", strings.NewReader("the\nand\n# comment\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := Parse("b", strings.NewReader("AND\n  the  \n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c, err := Parse("c", strings.NewReader("the\nor\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.Fingerprint() != b.Fingerprint() {
		t.Errorf("same words, different fingerprints: %s vs %s", a.Fingerprint(), b.Fingerprint())
	}
	if a.Fingerprint() == c.Fingerprint() {
		t.Error("different words share a fingerprint")
	}
	if len(a.Fingerprint()) != 16 {
		t.Errorf("fingerprint length = %d, want 16", len(a.Fingerprint()))
	}
}
