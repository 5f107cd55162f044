package export

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// exportPDF renders a titled page with a generation timestamp and a grid
// table. Page breaks on long tables are left to the PDF library; the column
// header is repeated on every new page.
func exportPDF(opts Options) (*Artifact, error) {
	title := opts.Title
	if title == "" {
		title = strings.ToUpper(strings.NewReplacer("-", " ", "_", " ").Replace(opts.Filename))
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetTextColor(40, 40, 40)
	pdf.Cell(0, 10, title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(100, 100, 100)
	pdf.Cell(0, 5, fmt.Sprintf("Generated on: %s", time.Now().Format("2006-01-02 15:04:05")))
	pdf.Ln(8)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(maxInt(len(opts.Columns), 1))

	header := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(15, 23, 42)
		pdf.SetTextColor(255, 255, 255)
		for _, col := range opts.Columns {
			pdf.CellFormat(colW, 8, col, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)
	}
	header()

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(40, 40, 40)
	for i, row := range opts.Rows {
		if pdf.GetY() > 270 {
			pdf.AddPage()
			header()
			pdf.SetFont("Helvetica", "", 8)
			pdf.SetTextColor(40, 40, 40)
		}
		fill := i%2 == 1
		pdf.SetFillColor(249, 250, 251)
		for j := 0; j < len(opts.Columns); j++ {
			var cell string
			if j < len(row) {
				cell = stringifyCell(row[j])
			}
			pdf.CellFormat(colW, 7, cell, "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}

	return &Artifact{
		Filename: opts.Filename + ".pdf",
		MIME:     "application/pdf",
		Data:     buf.Bytes(),
	}, nil
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
