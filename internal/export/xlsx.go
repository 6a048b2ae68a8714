package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const (
	defaultSheet      = "Sheet1"
	maxSheetNameLen   = 31
	defaultColumnWide = 18
)

// XLSXRenderer writes tables as a single-sheet Excel workbook
type XLSXRenderer struct{}

// NewXLSXRenderer creates a new spreadsheet renderer
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// ContentType returns the MIME type of xlsx workbooks
func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// Extension returns the file extension without a dot
func (r *XLSXRenderer) Extension() string {
	return "xlsx"
}

// Render writes t as a workbook with a bold, filterable header row
func (r *XLSXRenderer) Render(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := defaultSheet
	if name := sheetName(t.Title); name != "" && name != defaultSheet {
		f.SetSheetName(defaultSheet, name)
		sheet = name
	}

	if err := f.SetSheetRow(sheet, "A1", toCells(t.Headers)); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(sheet, cell, toCells(row)); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if len(t.Headers) > 0 {
		if err := styleHeader(f, sheet, len(t.Headers)); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}

	return nil
}

func styleHeader(f *excelize.File, sheet string, columns int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header row: %w", err)
	}

	lastCol, err := excelize.ColumnNumberToName(columns)
	if err != nil {
		return fmt.Errorf("failed to name column %d: %w", columns, err)
	}
	if err := f.SetColWidth(sheet, "A", lastCol, defaultColumnWide); err != nil {
		return fmt.Errorf("failed to set column width: %w", err)
	}
	if err := f.AutoFilter(sheet, "A1:"+lastCol+"1", nil); err != nil {
		return fmt.Errorf("failed to add auto filter: %w", err)
	}

	return nil
}

// ReadXLSX returns the rows of the first sheet of a workbook
func ReadXLSX(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}

	return rows, nil
}

// sheetName strips characters Excel rejects and enforces the length limit
func sheetName(title string) string {
	name := strings.Map(func(r rune) rune {
		switch r {
		case ':', '\\', '/', '?', '*', '[', ']':
			return -1
		}
		return r
	}, strings.TrimSpace(title))

	runes := []rune(name)
	if len(runes) > maxSheetNameLen {
		name = string(runes[:maxSheetNameLen])
	}

	return name
}

func toCells(values []string) *[]interface{} {
	cells := make([]interface{}, len(values))
	for i, v := range values {
		cells[i] = v
	}
	return &cells
}
