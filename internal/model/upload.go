package model

import "time"

type FileKind string

const (
	FileKindCSV  FileKind = "csv"
	FileKindXLSX FileKind = "xlsx"
)

// UploadedFile records one ingestion event. Rows are immutable once written.
type UploadedFile struct {
	ID int64

	// Filename is the sanitized, prefix-unique name the file was stored
	// under, never the raw client name.
	Filename    string
	StoragePath string
	Kind        FileKind
	UploadedAt  time.Time
	Processed   bool
	RowCount    int64
}
