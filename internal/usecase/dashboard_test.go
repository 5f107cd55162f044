package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"traveldesk-admin/pkg/rawdoc"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := newFakeStore()
	store.seed("users", "u1", rawdoc.Doc{"name": "Asha"})
	store.seed("users", "u2", rawdoc.Doc{"name": "Ravi"})
	store.seed("bookings", "b1", rawdoc.Doc{"createdAt": now.Format(time.RFC3339)})
	store.seed("bookings", "b2", rawdoc.Doc{"createdAt": now.Format(time.RFC3339)})
	store.seed("bookings", "b3", rawdoc.Doc{"createdAt": now.AddDate(0, 0, -3).Format(time.RFC3339)})
	store.seed("bookings", "b4", rawdoc.Doc{"createdAt": now.AddDate(0, 0, -30).Format(time.RFC3339)})
	store.seed("forum_posts", "p1", rawdoc.Doc{"title": "Tips"})
	svc, _, _ := newService(store)

	stats := svc.DashboardStats(context.Background())
	assert.Equal(t, int64(2), stats.TotalUsers)
	assert.Equal(t, int64(4), stats.TotalBookings)
	assert.Equal(t, int64(1), stats.TotalForumPosts)
	assert.Equal(t, int64(0), stats.TotalScratchCards)

	require.Len(t, stats.Trend, 7)

	// Oldest first, ending today, labeled by weekday
	for i, point := range stats.Trend {
		day := now.AddDate(0, 0, i-6)
		assert.Equal(t, day.Format("Mon"), point.Name)
	}
	assert.Equal(t, 2, stats.Trend[6].Bookings, "today")
	assert.Equal(t, 1, stats.Trend[3].Bookings, "three days ago")

	total := 0
	for _, point := range stats.Trend {
		total += point.Bookings
	}
	assert.Equal(t, 3, total, "the month-old booking falls outside the window")
}

func TestDashboardStatsTrendIsDense(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc, _, _ := newService(store)

	stats := svc.DashboardStats(context.Background())
	require.Len(t, stats.Trend, 7)
	for _, point := range stats.Trend {
		assert.Zero(t, point.Bookings)
		assert.NotEmpty(t, point.Name)
	}
}

func TestDashboardStatsStoreFailure(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.findErr = errors.New("connection reset")
	svc, _, _ := newService(store)

	stats := svc.DashboardStats(context.Background())
	assert.Zero(t, stats.TotalUsers)
	assert.Zero(t, stats.TotalBookings)
	assert.NotNil(t, stats.Trend)
	assert.Empty(t, stats.Trend)
}
