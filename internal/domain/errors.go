package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrResourceUnavailable signals that the stopword/tokenizer resource could not be loaded.
	ErrResourceUnavailable = errors.New("resource unavailable")
	// ErrUnsupportedFormat signals a document container the extractor cannot read.
	ErrUnsupportedFormat = errors.New("unsupported document format")
	// ErrCorruptDocument signals a document container that failed to parse.
	ErrCorruptDocument = errors.New("corrupt document")
	// ErrInvalidInput signals a malformed comparison request.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDocumentTooLarge signals a document above the configured size limit.
	ErrDocumentTooLarge = errors.New("document too large")
)

// DocumentTooLargeError wraps ErrDocumentTooLarge with the offending size and the limit.
type DocumentTooLargeError struct {
	Kind  string
	Size  int
	Limit int
}

func (e *DocumentTooLargeError) Error() string {
	return fmt.Sprintf("%s: %s is %d bytes (max %d)", ErrDocumentTooLarge.Error(), e.Kind, e.Size, e.Limit)
}

func (e *DocumentTooLargeError) Unwrap() error { return ErrDocumentTooLarge }

// NewDocumentTooLarge creates a size limit error.
func NewDocumentTooLarge(kind string, size, limit int) error {
	return &DocumentTooLargeError{Kind: kind, Size: size, Limit: limit}
}
