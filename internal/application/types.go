package application

import "notelink/internal/domain"

// Re-export domain types for use by adapters
type (
	Document      = domain.Document
	DocumentEvent = domain.DocumentEvent
	TitleEntry    = domain.TitleEntry
	Occurrence    = domain.Occurrence
	ScanConfig    = domain.ScanConfig
	IndexSnapshot = domain.IndexSnapshot
)

// Re-export sentinel errors so adapters can branch on outcomes without
// importing domain directly.
var (
	ErrNoActiveDocument = domain.ErrNoActiveDocument
	ErrEmptyResult      = domain.ErrEmptyResult
)
