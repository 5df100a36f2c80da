// SPDX-License-Identifier: MIT

package collection

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bosnet/site"
)

// Sweep designs plant once per depth penalty, running at most parallelism
// designs at a time (no limit when parallelism ≤ 0). Results follow the order
// of penalties. The first failure cancels the runs that have not started yet.
func Sweep(ctx context.Context, d *Designer, plant site.Plant, penalties []float64, parallelism int) ([]*Result, error) {
	if len(penalties) == 0 {
		return nil, ErrNoPenalties
	}

	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}

	results := make([]*Result, len(penalties))
	for i, w := range penalties {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := d.With(WithDepthPenalty(w)).Design(plant)
			if err != nil {
				return fmt.Errorf("collection: sweep penalty %g: %w", w, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
