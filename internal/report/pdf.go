// Package report renders the two-table health report as a PDF document.
//
// The report consumes trend rows in segment order: the production table
// first, then non-production positioned below wherever the first table
// ended. Layout beyond that ordering is cosmetic.
package report

import (
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/rolandbouwer/appdash/internal/errors"
	"github.com/rolandbouwer/appdash/internal/trend"
)

// DefaultFilename is the suggested name for a saved report.
const DefaultFilename = "app-health-report.pdf"

// Column headers shared by both tables.
var columns = []string{"Name", "URL", "Status", "Response Time"}

// Column widths in mm, sized for A4 portrait with default margins.
var widths = []float64{45, 85, 25, 30}

const (
	titleSize  = 13
	tableSize  = 10
	rowHeight  = 7.0
	tableGap   = 10.0
	titleToTop = 6.0
)

// WritePDF writes the full report for the two segments to w.
func WritePDF(w io.Writer, production, nonProduction []trend.Row) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("App Health Report", false)
	pdf.AddPage()

	writeTable(pdf, "Production Applications", production)
	pdf.SetY(pdf.GetY() + tableGap)
	writeTable(pdf, "Non-Production Applications", nonProduction)

	if err := pdf.Output(w); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Can't write the PDF report",
			"Check that the output location is writable")
	}
	return nil
}

// writeTable emits a section title, the header row, and one row per
// application at the current Y position.
func writeTable(pdf *gofpdf.Fpdf, title string, rows []trend.Row) {
	pdf.SetFont("Helvetica", "B", titleSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, titleToTop, title, "", 1, "L", false, 0, "")
	pdf.Ln(1)

	// Header row, white on blue.
	pdf.SetFont("Helvetica", "B", tableSize)
	pdf.SetFillColor(37, 99, 235)
	pdf.SetTextColor(255, 255, 255)
	for i, col := range columns {
		pdf.CellFormat(widths[i], rowHeight, col, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", tableSize)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFillColor(245, 247, 250)

	for n, row := range rows {
		fill := n%2 == 1
		cells := []string{row.Name, row.URL, row.Status, row.ResponseTime}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], rowHeight, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if len(rows) == 0 {
		pdf.CellFormat(sumWidths(), rowHeight, "No applications", "1", 1, "C", false, 0, "")
	}
}

func sumWidths() float64 {
	var total float64
	for _, w := range widths {
		total += w
	}
	return total
}
