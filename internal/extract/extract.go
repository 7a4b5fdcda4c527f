// Package extract turns uploaded document containers into plain UTF-8 text.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/kailas-cloud/docmatch/internal/domain"
)

// Source is an uploaded document container.
type Source struct {
	Name        string
	ContentType string
	Data        []byte
}

// Extractor reads text out of supported containers.
type Extractor struct {
	extractTotal *prometheus.CounterVec
}

// New creates an Extractor.
// extractTotal is a counter vec with labels "format" and "status", may be nil.
func New(extractTotal *prometheus.CounterVec) *Extractor {
	return &Extractor{extractTotal: extractTotal}
}

// Extract returns the text of src.
// Unknown containers fail with domain.ErrUnsupportedFormat,
// unreadable ones with domain.ErrCorruptDocument.
func (e *Extractor) Extract(ctx context.Context, src Source) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("extract %s: %w", src.Name, err)
	}

	format := Detect(src.Name, src.ContentType)

	var (
		text string
		err  error
	)
	switch format {
	case FormatText:
		text, err = plainText(src.Data)
	case FormatHTML:
		text, err = htmlText(src.Data)
	case FormatDOCX:
		text, err = docxText(src.Data)
	case FormatPDF:
		text, err = pdfText(src.Data)
	default:
		err = fmt.Errorf("%w: %q", domain.ErrUnsupportedFormat, src.Name)
	}

	if err != nil {
		e.inc(format, "error")
		return "", fmt.Errorf("extract %s: %w", src.Name, err)
	}
	e.inc(format, "ok")
	return text, nil
}

func (e *Extractor) inc(format Format, status string) {
	if e.extractTotal != nil {
		e.extractTotal.WithLabelValues(string(format), status).Inc()
	}
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

func plainText(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: text is not valid UTF-8", domain.ErrCorruptDocument)
	}
	return string(data), nil
}
