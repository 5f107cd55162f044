package usecase

import (
	"context"
	"sync"

	"traveldesk-admin/pkg/rawdoc"

	"golang.org/x/sync/errgroup"
)

// resolveUsers resolves every distinct, non-empty userId referenced by the
// batch to its owning user document. Exactly one point lookup is issued per
// distinct key, all concurrently, so latency stays at one round trip. A
// failed or missing lookup only omits that key; the batch never aborts.
func (s *AdminService) resolveUsers(ctx context.Context, records []rawdoc.Record) map[string]rawdoc.Doc {
	distinct := make(map[string]struct{})
	for _, rec := range records {
		if id := firstText(rec.Data, "userId"); id != "" {
			distinct[id] = struct{}{}
		}
	}

	users := make(map[string]rawdoc.Doc, len(distinct))
	if len(distinct) == 0 {
		return users
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for id := range distinct {
		id := id
		g.Go(func() error {
			if s.metrics != nil {
				s.metrics.UserLookups.Inc()
			}
			rec, err := s.store.Get(gctx, collUsers, id)
			if err != nil {
				s.logger.Warn("Failed to fetch user", "userId", id, "error", err)
				return nil
			}
			if rec == nil {
				return nil
			}
			mu.Lock()
			users[id] = rec.Data
			mu.Unlock()
			return nil
		})
	}
	// Every goroutine swallows its own failure, so the group error is
	// always nil; Wait is only a join point.
	_ = g.Wait()

	return users
}
