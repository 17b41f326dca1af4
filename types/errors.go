package types

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyDocument is returned by the chunker for empty or
	// whitespace-only input.
	ErrEmptyDocument = errors.New("document text is empty")

	// ErrEmptyExtraction is returned when no text could be recovered from an
	// uploaded document.
	ErrEmptyExtraction = errors.New("no text extracted from document")

	// ErrUnsupportedFormat is returned for file extensions no extractor
	// handles.
	ErrUnsupportedFormat = errors.New("unsupported file format")

	// ErrUnknownDocumentType is returned for a document type that is neither
	// law nor contract.
	ErrUnknownDocumentType = errors.New("unknown document type")
)

// ProviderError wraps a failed embedding or completion call.
type ProviderError struct {
	Op  string
	Err error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}
