package usecase

import (
	"context"
	"time"

	"traveldesk-admin/internal/domain/entity"
	"traveldesk-admin/internal/domain/repository"
	"traveldesk-admin/pkg/rawdoc"

	"golang.org/x/sync/errgroup"
)

// trendWindowDays is the trailing window of the booking trend
const trendWindowDays = 7

// DashboardStats returns the dashboard counters and the 7-day booking
// trend. Counts come from the server side so document bodies are only
// transferred for the trend window; all five reads run in parallel.
func (s *AdminService) DashboardStats(ctx context.Context) entity.DashboardStats {
	defer s.observeQuery(collBookings, time.Now())

	var (
		stats  entity.DashboardStats
		recent []rawdoc.Record
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TotalUsers, err = s.store.Count(gctx, collUsers)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalBookings, err = s.store.Count(gctx, collBookings)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalForumPosts, err = s.store.Count(gctx, collForumPosts)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalScratchCards, err = s.store.Count(gctx, collScratchCards)
		return err
	})
	g.Go(func() (err error) {
		// Recent bookings are enough to fill the trailing trend window
		recent, err = s.store.Find(gctx, collBookings, repository.Query{
			OrderBy: "createdAt",
			Desc:    true,
			Limit:   100,
		})
		return err
	})

	if err := g.Wait(); err != nil {
		s.degrade("dashboard stats", err)
		return entity.DashboardStats{Trend: []entity.TrendPoint{}}
	}

	stats.Trend = buildTrend(recent, time.Now())
	return stats
}

// buildTrend buckets records per calendar day over the trailing window,
// oldest first, ending today. The series is dense: days without records
// still appear with a zero count.
func buildTrend(records []rawdoc.Record, now time.Time) []entity.TrendPoint {
	type bucket struct {
		name string
		date string
	}

	buckets := make([]bucket, 0, trendWindowDays)
	counts := make(map[string]int, trendWindowDays)
	for i := trendWindowDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format("2006-01-02")
		buckets = append(buckets, bucket{name: day.Format("Mon"), date: key})
		counts[key] = 0
	}

	for _, rec := range records {
		created, ok := rec.Data.Lookup("createdAt")
		if !ok {
			continue
		}
		day := rawdoc.DecodeTime(created).DateOnly()
		if _, tracked := counts[day]; tracked {
			counts[day]++
		}
	}

	trend := make([]entity.TrendPoint, 0, trendWindowDays)
	for _, b := range buckets {
		trend = append(trend, entity.TrendPoint{Name: b.name, Bookings: counts[b.date]})
	}
	return trend
}
