package compare

import (
	"context"
	"testing"

	"github.com/kailas-cloud/docmatch/internal/domain/comparison"
	"github.com/kailas-cloud/docmatch/internal/domain/text"
	"github.com/kailas-cloud/docmatch/internal/domain/text/lexicon"
	"github.com/kailas-cloud/docmatch/internal/extract"
)

// --- Mocks ---

type mockNormalizer struct {
	fn    func(raw string) (text.TokenSequence, error)
	calls int
}

func (m *mockNormalizer) Normalize(raw string) (text.TokenSequence, error) {
	m.calls++
	return m.fn(raw)
}

type mockExtractor struct {
	texts map[string]string
	errs  map[string]error
	calls []string
}

func (m *mockExtractor) Extract(_ context.Context, src extract.Source) (string, error) {
	m.calls = append(m.calls, src.Name)
	if err, ok := m.errs[src.Name]; ok {
		return "", err
	}
	return m.texts[src.Name], nil
}

type mockComparer struct {
	result   comparison.Result
	err      error
	gotJD    string
	gotCV    string
	numCalls int
}

func (m *mockComparer) Compare(_ context.Context, jd, cv string) (comparison.Result, error) {
	m.numCalls++
	m.gotJD, m.gotCV = jd, cv
	return m.result, m.err
}

// --- Helpers ---

func newEnglishService(t *testing.T) *Service {
	t.Helper()
	lex, err := lexicon.English()
	if err != nil {
		t.Fatalf("load lexicon: %v", err)
	}
	n, err := text.NewNormalizer(lex)
	if err != nil {
		t.Fatalf("normalizer: %v", err)
	}
	return New(n, nil)
}
