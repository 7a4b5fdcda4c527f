package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	docmatch "github.com/kailas-cloud/docmatch/pkg/sdk"
)

func TestPrintReport(t *testing.T) {
	color.NoColor = true

	res := docmatch.Result{
		Similarity: 0.432,
		Display:    "0.432",
		JobDescription: docmatch.Summary{
			TokenCount: 5,
			Terms:      []docmatch.TermCount{{Term: "python", Count: 2}, {Term: "go", Count: 1}},
		},
		Resume:         docmatch.Summary{},
		SharedTerms:    []docmatch.TermCount{{Term: "python", Count: 3}},
		MissingTerms:   nil,
		VocabularySize: 7,
	}

	var buf bytes.Buffer
	printReport(&buf, res)
	out := buf.String()

	for _, want := range []string{
		"Similarity: 0.432",
		"Vocabulary: 7 terms",
		"Job description (5 tokens)",
		"python " + strings.Repeat("█", barWidth) + " 2",
		"go     " + strings.Repeat("█", barWidth/2) + " 1",
		"Resume (0 tokens)",
		"(no terms)",
		"Shared:  python",
		"Missing: -",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}
