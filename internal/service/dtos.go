package service

import (
	"fmt"

	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

// CustomerListResult represents a page of customers
type CustomerListResult struct {
	Data       []*models.Customer      `json:"data"`
	Pagination models.PaginationResult `json:"pagination"`
}

// ExportRequest selects which customers to export and how
type ExportRequest struct {
	Format   string   `json:"format"`
	Language string   `json:"language"`
	Columns  []string `json:"columns"`
	Search   string   `json:"q"`
	SortBy   string   `json:"sort"`
	Order    string   `json:"order"`
}

// Validate performs validation on the export request
func (r *ExportRequest) Validate() error {
	if !models.IsValidExportFormat(r.Format) {
		return models.ErrInvalidInput("invalid format (must be 'xlsx' or 'pdf')")
	}
	for _, col := range r.Columns {
		if !IsValidColumn(col) {
			return models.ErrInvalidInput(fmt.Sprintf("unknown column: %s", col))
		}
	}
	return nil
}

// ExportFile is a rendered export ready to be sent to a client
type ExportFile struct {
	Name        string
	ContentType string
	Data        []byte
}

// RowError describes why a spreadsheet row was not imported
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

// ImportResult summarises a spreadsheet import
type ImportResult struct {
	Imported int        `json:"imported"`
	Failed   int        `json:"failed"`
	Errors   []RowError `json:"errors"`
}
