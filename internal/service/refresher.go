package service

import (
	"log"

	"golang.org/x/sync/errgroup"

	"fintrack/internal/model"
)

// refreshLimit caps the number of concurrent quote fetches in a bulk refresh
// so a large portfolio cannot stampede the upstream APIs.
const refreshLimit = 8

// refreshAll runs one refresh task per holding concurrently and collects a
// per-holding outcome report in input order. Each task returns the holding's
// identifier and its refresh error; a failed task is recorded as an
// unsuccessful outcome and never aborts the siblings, so one bad symbol
// cannot sink the whole refresh.
func refreshAll(n int, task func(i int) (string, error)) []model.RefreshOutcome {
	outcomes := make([]model.RefreshOutcome, n)

	var g errgroup.Group
	g.SetLimit(refreshLimit)

	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			identifier, err := task(i)
			if err != nil {
				log.Printf("refresh failed for %s: %v", identifier, err)
			}
			outcomes[i] = model.RefreshOutcome{
				Identifier: identifier,
				Success:    err == nil,
			}
			return nil
		})
	}

	// Tasks always return nil; Wait only synchronises.
	_ = g.Wait()

	return outcomes
}
