package export_test

import (
	"strings"
	"testing"

	"traveldesk-admin/pkg/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCSV(t *testing.T) {
	t.Parallel()

	t.Run("cells with commas or quotes are escaped", func(t *testing.T) {
		artifact, err := export.ExportData(export.FormatCSV, export.Options{
			Filename: "bookings",
			Columns:  []string{"ID", "Name"},
			Rows: [][]interface{}{
				{"b1", `Smith, "The Best"`},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "bookings.csv", artifact.Filename)
		assert.Equal(t, "text/csv; charset=utf-8", artifact.MIME)
		assert.Equal(t, "ID,Name\nb1,\"Smith, \"\"The Best\"\"\"", string(artifact.Data))
	})

	t.Run("plain cells stay unquoted", func(t *testing.T) {
		artifact, err := export.ExportData(export.FormatCSV, export.Options{
			Filename: "users",
			Columns:  []string{"Name", "Balance", "Active", "Note"},
			Rows: [][]interface{}{
				{"Asha", 15000.0, true, nil},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, "Name,Balance,Active,Note\nAsha,15000,true,", string(artifact.Data))
	})

	t.Run("empty row set still yields the header", func(t *testing.T) {
		artifact, err := export.ExportData(export.FormatCSV, export.Options{
			Filename: "partners",
			Columns:  []string{"ID", "Business", "City"},
		})
		require.NoError(t, err)
		assert.Equal(t, "ID,Business,City", string(artifact.Data))
	})
}

func TestExportPDF(t *testing.T) {
	t.Parallel()

	artifact, err := export.ExportData(export.FormatPDF, export.Options{
		Filename: "bookings",
		Title:    "Package Bookings",
		Columns:  []string{"ID", "Package", "Price"},
		Rows: [][]interface{}{
			{"b1", "Goa Trip", 15000.0},
			{"b2", "Alps Hike", 32000.0},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "bookings.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.MIME)
	require.NotEmpty(t, artifact.Data)
	assert.True(t, strings.HasPrefix(string(artifact.Data), "%PDF"))
}

func TestExportUnsupportedFormat(t *testing.T) {
	t.Parallel()

	_, err := export.ExportData(export.Format("xlsx"), export.Options{Filename: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported export format")
}
