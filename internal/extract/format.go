package extract

import (
	"mime"
	"path/filepath"
	"strings"
)

// Format is a supported document container.
type Format string

const (
	// FormatText is UTF-8 plain text or Markdown.
	FormatText Format = "text"
	// FormatHTML is an HTML page.
	FormatHTML Format = "html"
	// FormatDOCX is an Office Open XML word document.
	FormatDOCX Format = "docx"
	// FormatPDF is a PDF document.
	FormatPDF Format = "pdf"
	// FormatUnknown is anything else.
	FormatUnknown Format = "unknown"
)

var formatsByExt = map[string]Format{
	".txt":      FormatText,
	".text":     FormatText,
	".md":       FormatText,
	".markdown": FormatText,
	".html":     FormatHTML,
	".htm":      FormatHTML,
	".docx":     FormatDOCX,
	".pdf":      FormatPDF,
}

var formatsByMediaType = map[string]Format{
	"text/plain":      FormatText,
	"text/markdown":   FormatText,
	"text/html":       FormatHTML,
	"application/pdf": FormatPDF,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": FormatDOCX,
}

// Detect picks a format from the file extension, falling back to the content type.
func Detect(name, contentType string) Format {
	if f, ok := formatsByExt[strings.ToLower(filepath.Ext(name))]; ok {
		return f
	}
	if contentType != "" {
		if mt, _, err := mime.ParseMediaType(contentType); err == nil {
			if f, ok := formatsByMediaType[mt]; ok {
				return f
			}
		}
	}
	return FormatUnknown
}
