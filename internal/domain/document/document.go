package document

import "fmt"

// Kind identifies which side of a comparison a document is on.
type Kind string

const (
	// JobDescription is the posting being screened against.
	JobDescription Kind = "job_description"
	// Resume is the candidate document.
	Resume Kind = "resume"
)

// Valid reports whether k is a known document kind.
func (k Kind) Valid() bool {
	return k == JobDescription || k == Resume
}

// Document is an extracted plain-text document (immutable value object).
type Document struct {
	kind Kind
	text string
}

// New validates and creates a Document. Empty text is allowed.
func New(kind Kind, text string) (Document, error) {
	if !kind.Valid() {
		return Document{}, fmt.Errorf("unknown document kind %q", kind)
	}
	return Document{kind: kind, text: text}, nil
}

// Kind returns the document side.
func (d Document) Kind() Kind { return d.kind }

// Text returns the raw extracted text.
func (d Document) Text() string { return d.text }

// Size returns the raw text length in bytes.
func (d Document) Size() int { return len(d.text) }
