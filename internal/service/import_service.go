package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Raymond9734/parking-customers-backend/internal/export"
	"github.com/Raymond9734/parking-customers-backend/internal/i18n"
	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

// ImportService loads customers from spreadsheets
type ImportService interface {
	Import(ctx context.Context, r io.Reader) (*ImportResult, error)
}

type importService struct {
	customerSvc   CustomerService
	collectionSvc CollectionService
	logger        *slog.Logger
}

// NewImportService creates a new import service
func NewImportService(customerSvc CustomerService, collectionSvc CollectionService, logger *slog.Logger) ImportService {
	return &importService{
		customerSvc:   customerSvc,
		collectionSvc: collectionSvc,
		logger:        logger,
	}
}

// Import reads the first sheet of an xlsx workbook. The first row is the
// header; every following non-blank row becomes a new customer.
func (s *importService) Import(ctx context.Context, r io.Reader) (*ImportResult, error) {
	rows, err := export.ReadXLSX(r)
	if err != nil {
		return nil, models.ErrInvalidInput(err.Error())
	}
	if len(rows) == 0 {
		return nil, models.ErrInvalidInput("workbook is empty")
	}

	columns, indexes, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	result := &ImportResult{Errors: []RowError{}}
	for i, row := range rows[1:] {
		rowNumber := i + 2
		if isBlankRow(row) {
			continue
		}

		cells := make([]string, len(indexes))
		for j, idx := range indexes {
			if idx < len(row) {
				cells[j] = strings.TrimSpace(row[idx])
			}
		}

		if err := s.importRow(ctx, columns, cells); err != nil {
			result.Failed++
			result.Errors = append(result.Errors, RowError{Row: rowNumber, Message: rowMessage(err)})
			continue
		}
		result.Imported++
	}

	s.logger.Info("customers imported",
		slog.Int("imported", result.Imported),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

func (s *importService) importRow(ctx context.Context, columns, cells []string) error {
	customer, err := s.collectionSvc.ParseExportRow(columns, cells)
	if err != nil {
		return err
	}

	if _, err := s.customerSvc.Create(ctx, customer); err != nil {
		return err
	}

	return nil
}

// mapHeader resolves header labels to column keys and their cell positions.
// A header matches a raw column key or its label in any supported language.
func mapHeader(header []string) ([]string, []int, error) {
	var columns []string
	var indexes []int
	seen := make(map[string]bool)

	for i, label := range header {
		col, ok := columnForLabel(label)
		if !ok {
			continue
		}
		if seen[col] {
			return nil, nil, models.ErrInvalidInput(fmt.Sprintf("duplicate column: %s", strings.TrimSpace(label)))
		}
		seen[col] = true
		columns = append(columns, col)
		indexes = append(indexes, i)
	}

	if len(columns) == 0 {
		return nil, nil, models.ErrInvalidInput("header row has no known columns")
	}

	return columns, indexes, nil
}

func columnForLabel(label string) (string, bool) {
	l := strings.TrimSpace(label)
	if l == "" {
		return "", false
	}

	for _, col := range DefaultColumns {
		if strings.EqualFold(col, l) {
			return col, true
		}
		for _, lang := range i18n.Languages() {
			if strings.EqualFold(i18n.T(lang, col), l) {
				return col, true
			}
		}
	}

	return "", false
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// rowMessage prefers the AppError message over the full error chain
func rowMessage(err error) string {
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
