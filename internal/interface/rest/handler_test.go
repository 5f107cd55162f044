package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/internal/domain/repository"
	"traveldesk-admin/internal/infrastructure/identity"
	"traveldesk-admin/internal/interface/rest"
	"traveldesk-admin/internal/usecase"
	"traveldesk-admin/pkg/logger"
	"traveldesk-admin/pkg/rawdoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubStore serves a single canned booking
type stubStore struct{}

func (stubStore) Find(_ context.Context, collection string, _ repository.Query) ([]rawdoc.Record, error) {
	if collection != "bookings" {
		return nil, nil
	}
	return []rawdoc.Record{{
		ID: "b1",
		Data: rawdoc.Doc{
			"packageName": "Goa Trip",
			"totalAmount": 15000.0,
			"createdAt":   "2024-05-01T10:00:00Z",
		},
	}}, nil
}

func (stubStore) Get(context.Context, string, string) (*rawdoc.Record, error) { return nil, nil }
func (stubStore) Count(context.Context, string) (int64, error)               { return 0, nil }
func (stubStore) Insert(context.Context, string, rawdoc.Doc) (string, error) { return "", nil }
func (stubStore) Update(context.Context, string, string, rawdoc.Doc) error   { return nil }
func (stubStore) Delete(context.Context, string, string) error               { return nil }

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	log := logger.NewNopLogger()
	verifier, err := identity.NewVerifier(context.Background(), "", log)
	require.NoError(t, err)

	admin := usecase.NewAdminService(stubStore{}, nil, nil, log, nil)
	server := httptest.NewServer(rest.NewHandler(admin, verifier, log).Routes())
	t.Cleanup(server.Close)
	return server
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	resp, err := http.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestListBookings(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	resp, err := http.Get(server.URL + "/api/v1/bookings")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var page entity.BookingPage
	require.NoError(t, decodeJSON(resp, &page))
	require.Len(t, page.Bookings, 1)
	assert.Equal(t, "Goa Trip", page.Bookings[0].PackageName)
	assert.Equal(t, 1, page.Total)
}

func TestUnknownServiceType(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	resp, err := http.Get(server.URL + "/api/v1/services/boats/bookings")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExportDownloadHeaders(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	resp, err := http.Get(server.URL + "/api/v1/export/bookings")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/csv; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `"bookings.csv"`)
}

func TestUpdateBookingStatusValidation(t *testing.T) {
	t.Parallel()

	server := newTestServer(t)
	req, err := http.NewRequest(http.MethodPatch, server.URL+"/api/v1/bookings/b1/status", strings.NewReader(`{}`))
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func decodeJSON(resp *http.Response, v interface{}) error {
	return json.NewDecoder(resp.Body).Decode(v)
}
