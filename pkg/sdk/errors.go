package docmatch

import "github.com/kailas-cloud/docmatch/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrResourceUnavailable = domain.ErrResourceUnavailable
	ErrUnsupportedFormat   = domain.ErrUnsupportedFormat
	ErrCorruptDocument     = domain.ErrCorruptDocument
	ErrInvalidInput        = domain.ErrInvalidInput
)
