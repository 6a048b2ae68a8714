package models

import (
	"time"

	"github.com/google/uuid"
)

// Export format constants
const (
	ExportFormatXLSX = "xlsx"
	ExportFormatPDF  = "pdf"
)

// ExportJob is a snapshot of a customer export queued for the worker.
// Rows are copied in so the worker never reads live collection state.
type ExportJob struct {
	ID          string     `json:"id"`
	Format      string     `json:"format"`
	Language    string     `json:"language"`
	Title       string     `json:"title"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	RequestedAt time.Time  `json:"requested_at"`
}

// IsValidExportFormat checks if the export format is valid
func IsValidExportFormat(format string) bool {
	return format == ExportFormatXLSX || format == ExportFormatPDF
}

// Validate performs validation on an export job
func (j *ExportJob) Validate() error {
	// The id becomes a file name, so only UUIDs are accepted.
	if _, err := uuid.Parse(j.ID); err != nil {
		return ErrInvalidInput("job id must be a UUID")
	}
	if !IsValidExportFormat(j.Format) {
		return ErrInvalidInput("invalid format (must be 'xlsx' or 'pdf')")
	}
	if len(j.Headers) == 0 {
		return ErrInvalidInput("headers are required")
	}
	for _, row := range j.Rows {
		if len(row) != len(j.Headers) {
			return ErrInvalidInput("every row must have one cell per header")
		}
	}
	return nil
}
