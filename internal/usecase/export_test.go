package usecase_test

import (
	"context"
	"strings"
	"testing"

	"traveldesk-admin/pkg/export"
	"traveldesk-admin/pkg/rawdoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportBookingsCSV(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.seed("bookings", "b1", rawdoc.Doc{
		"packageName": "Goa, Beach Special",
		"totalAmount": 15000.0,
		"userId":      "u1",
	})
	store.seed("users", "u1", rawdoc.Doc{"name": "Asha"})
	svc, _, _ := newService(store)

	artifact, err := svc.Export(context.Background(), "bookings", export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "bookings.csv", artifact.Filename)

	lines := strings.Split(string(artifact.Data), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Package,Days,Price,Start Date,People,Customer,Mobile,Payment,Status", lines[0])
	assert.Contains(t, lines[1], `"Goa, Beach Special"`)
	assert.Contains(t, lines[1], "Asha")
}

func TestExportServiceBookingsPDF(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.seed("bookings", "f1", rawdoc.Doc{
		"type":         "flight",
		"flightNumber": "AI-102",
		"from":         "DEL",
		"to":           "BOM",
		"totalAmount":  4500.0,
	})
	svc, _, _ := newService(store)

	artifact, err := svc.Export(context.Background(), "flights", export.FormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "flights-bookings.pdf", artifact.Filename)
	assert.Equal(t, "application/pdf", artifact.MIME)
	assert.True(t, strings.HasPrefix(string(artifact.Data), "%PDF"))
}

func TestExportUnknownResource(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc, _, _ := newService(store)

	_, err := svc.Export(context.Background(), "invoices", export.FormatCSV)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown export resource")
}
