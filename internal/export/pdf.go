package export

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

const (
	pdfFontFamily  = "Helvetica"
	pdfUTF8Family  = "unicode"
	pdfTitleSize   = 14
	pdfBodySize    = 7
	pdfRowHeight   = 6
	pdfCellPadding = 1
	pdfBreakMargin = 10
	pdfEllipsis    = "..."
)

// PDFRenderer writes tables as a landscape A4 document
type PDFRenderer struct {
	fontPath string
}

// NewPDFRenderer creates a PDF renderer. fontPath may be empty.
func NewPDFRenderer(fontPath string) *PDFRenderer {
	return &PDFRenderer{fontPath: fontPath}
}

// ContentType returns the MIME type of PDF documents
func (r *PDFRenderer) ContentType() string {
	return "application/pdf"
}

// Extension returns the file extension without a dot
func (r *PDFRenderer) Extension() string {
	return "pdf"
}

// Render lays t out as a bordered table; cells wider than their column are cut
func (r *PDFRenderer) Render(w io.Writer, t Table) error {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(t.Title, true)
	pdf.SetAutoPageBreak(true, pdfBreakMargin)

	family := pdfFontFamily
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if r.fontPath != "" {
		pdf.AddUTF8Font(pdfUTF8Family, "", r.fontPath)
		pdf.AddUTF8Font(pdfUTF8Family, "B", r.fontPath)
		family = pdfUTF8Family
		tr = func(s string) string { return s }
		if pdf.Err() {
			return fmt.Errorf("failed to load font %s: %w", r.fontPath, pdf.Error())
		}
	}

	pdf.AddPage()

	pdf.SetFont(family, "B", pdfTitleSize)
	pdf.CellFormat(0, 10, tr(t.Title), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	columns := len(t.Headers)
	if columns == 0 {
		return output(pdf, w)
	}

	pageWidth, pageHeight := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colWidth := (pageWidth - left - right) / float64(columns)

	header := func() {
		pdf.SetFont(family, "B", pdfBodySize)
		pdf.SetFillColor(230, 230, 230)
		for _, h := range t.Headers {
			pdf.CellFormat(colWidth, pdfRowHeight, fit(pdf, tr(h), colWidth), "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
		pdf.SetFont(family, "", pdfBodySize)
	}
	pdf.SetHeaderFunc(func() {
		if pdf.PageNo() > 1 {
			header()
		}
	})

	header()
	for _, row := range t.Rows {
		// break before the row so its cells stay on one page
		if !rowFits(pdf.GetY(), pdfRowHeight, pageHeight) {
			pdf.AddPage()
		}
		for i := 0; i < columns; i++ {
			cell := ""
			if i < len(row) {
				cell = tr(row[i])
			}
			pdf.CellFormat(colWidth, pdfRowHeight, fit(pdf, cell, colWidth), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	return output(pdf, w)
}

// rowFits reports whether a row of height h starting at y ends above the
// bottom break margin
func rowFits(y, h, pageHeight float64) bool {
	return y+h <= pageHeight-pdfBreakMargin
}

func output(pdf *fpdf.Fpdf, w io.Writer) error {
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// fit shortens s until it fits in width, marking the cut with an ellipsis
func fit(pdf *fpdf.Fpdf, s string, width float64) string {
	limit := width - 2*pdfCellPadding
	if pdf.GetStringWidth(s) <= limit {
		return s
	}

	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := string(runes) + pdfEllipsis
		if pdf.GetStringWidth(candidate) <= limit {
			return candidate
		}
	}

	return ""
}
