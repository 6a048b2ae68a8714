// Package export turns tabular customer projections into downloadable files.
package export

import (
	"fmt"
	"io"

	"github.com/Raymond9734/parking-customers-backend/internal/models"
)

// Table is a format-agnostic export: a title, header labels and text cells
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// TableFromJob builds the table carried by an export job
func TableFromJob(job *models.ExportJob) Table {
	return Table{
		Title:   job.Title,
		Headers: job.Headers,
		Rows:    job.Rows,
	}
}

// Renderer encodes a table into a file format
type Renderer interface {
	Render(w io.Writer, t Table) error
	ContentType() string
	Extension() string
}

// Options tune the renderers returned by ForFormat
type Options struct {
	// PDFFontPath points to a UTF-8 TrueType font. Without it PDFs use
	// Helvetica, which only covers Western European text.
	PDFFontPath string
}

// ForFormat returns the renderer for an export format
func ForFormat(format string, opts Options) (Renderer, error) {
	switch format {
	case models.ExportFormatXLSX:
		return NewXLSXRenderer(), nil
	case models.ExportFormatPDF:
		return NewPDFRenderer(opts.PDFFontPath), nil
	default:
		return nil, models.ErrInvalidInput(fmt.Sprintf("unsupported export format: %s", format))
	}
}
