package luma

import (
	"runtime"

	"github.com/esimov/luma/utils"
	"golang.org/x/sync/errgroup"
)

const (
	// maxWorkers sets the maximum number of concurrently running workers.
	maxWorkers = 20

	// defaultStripeRows is the minimum number of rows handed to one worker.
	defaultStripeRows = 64
)

// stripe is a horizontal band of rows [y0, y1).
type stripe struct {
	y0, y1 int
}

// planStripes splits height rows into at most workers contiguous, disjoint
// stripes of at least minRows rows each (the last one may be shorter).
func planStripes(height, workers, minRows int) []stripe {
	if height <= 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	workers = utils.Min(workers, maxWorkers)
	minRows = utils.Max(minRows, 1)

	n := utils.Clamp((height+minRows-1)/minRows, 1, workers)
	rows := (height + n - 1) / n

	stripes := make([]stripe, 0, n)
	for y := 0; y < height; y += rows {
		stripes = append(stripes, stripe{y0: y, y1: utils.Min(y+rows, height)})
	}
	return stripes
}

// runStripes calls fn for every stripe and returns once all calls are done.
// A single stripe runs on the calling goroutine; otherwise each stripe gets
// its own goroutine, so concurrency is bounded by planStripes.
// fn must only touch the rows of the stripe it is given.
func runStripes(stripes []stripe, fn func(y0, y1 int)) {
	if len(stripes) == 1 {
		fn(stripes[0].y0, stripes[0].y1)
		return
	}

	var g errgroup.Group
	for _, s := range stripes {
		g.Go(func() error {
			fn(s.y0, s.y1)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // fn never fails; Wait only joins the workers
}
