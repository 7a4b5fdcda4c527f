package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/kailas-cloud/docmatch/internal/domain"
)

func htmlText(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: parse html: %w", domain.ErrCorruptDocument, err)
	}

	doc.Find("script, style, noscript, template").Remove()

	// Text nodes are joined with spaces so adjacent blocks do not glue words together.
	var b strings.Builder
	var walk func(*goquery.Selection)
	walk = func(sel *goquery.Selection) {
		sel.Contents().Each(func(_ int, s *goquery.Selection) {
			if goquery.NodeName(s) != "#text" {
				walk(s)
				return
			}
			if t := strings.TrimSpace(s.Text()); t != "" {
				if b.Len() > 0 {
					b.WriteByte(' ')
				}
				b.WriteString(t)
			}
		})
	}
	walk(doc.Selection)
	return b.String(), nil
}
