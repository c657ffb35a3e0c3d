package domain

import "errors"

// Sentinel errors for common conditions. All are recoverable; none abort
// the process or mutate index state.
var (
	// ErrNoActiveDocument is returned when a scan is requested without an
	// open document to scan.
	ErrNoActiveDocument = errors.New("no active document")

	// ErrEmptyResult signals a scan that completed but found nothing. It is
	// informational, not a failure.
	ErrEmptyResult = errors.New("no occurrences found")
)
