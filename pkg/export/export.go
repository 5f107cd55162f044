// Package export converts tabular view models into downloadable artifacts.
// The core only produces bytes plus a suggested filename and MIME type; the
// transport layer decides how the download is delivered.
package export

import "fmt"

// Format selects the output representation.
type Format string

const (
	FormatCSV Format = "csv"
	FormatPDF Format = "pdf"
)

// Options describes one tabular export request.
type Options struct {
	Filename string
	Title    string
	Columns  []string
	Rows     [][]interface{}
}

// Artifact is a rendered export ready for download.
type Artifact struct {
	Filename string
	MIME     string
	Data     []byte
}

// ExportData renders the table in the requested format.
func ExportData(format Format, opts Options) (*Artifact, error) {
	switch format {
	case FormatCSV:
		return exportCSV(opts)
	case FormatPDF:
		return exportPDF(opts)
	}
	return nil, fmt.Errorf("unsupported export format: %q", format)
}
