// Package parallel provides the worker pool used to build pattern
// databases: a fixed number of goroutines each claim contiguous chunks of
// a linear index space and run a caller-supplied function over their
// chunk, coordinated with golang.org/x/sync/errgroup the same way the
// reference index builder this module is descended from parallelises
// block construction.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// MaxJobs bounds the number of worker goroutines a Run call will start,
// mirroring the PDB_MAX_JOBS cap the reference solver applies to its BFS
// construction workers.
const MaxJobs = 256

// Jobs clamps the requested worker count to a sane range: at least one
// worker, at most MaxJobs, and no more than the number of logical CPUs
// when n <= 0 (the "auto" request).
func Jobs(n int) int {
	if n > 0 {
		if n > MaxJobs {
			return MaxJobs
		}
		return n
	}
	cpu := runtime.NumCPU()
	if cpu > MaxJobs {
		return MaxJobs
	}
	if cpu < 1 {
		return 1
	}
	return cpu
}

// Range is a contiguous, half-open chunk [Lo, Hi) of a linear index space.
type Range struct {
	Lo, Hi uint64
}

// Len returns the number of indices in r.
func (r Range) Len() uint64 {
	return r.Hi - r.Lo
}

// Chunks splits [0, n) into at most workers contiguous, roughly equal
// ranges, in ascending order. It never returns more ranges than there are
// indices to cover.
func Chunks(n uint64, workers int) []Range {
	if workers < 1 {
		workers = 1
	}
	if uint64(workers) > n {
		workers = int(n)
	}
	if workers == 0 {
		return nil
	}

	chunks := make([]Range, 0, workers)
	base := n / uint64(workers)
	rem := n % uint64(workers)

	var lo uint64
	for i := 0; i < workers; i++ {
		size := base
		if uint64(i) < rem {
			size++
		}
		chunks = append(chunks, Range{Lo: lo, Hi: lo + size})
		lo += size
	}
	return chunks
}

// Run partitions [0, n) into Chunks(n, workers) and runs f once per chunk
// on its own goroutine, using an errgroup so that the first error returned
// by any worker cancels ctx for the rest and is propagated to the caller.
// f must be safe to call concurrently with itself.
func Run(ctx context.Context, n uint64, workers int, f func(ctx context.Context, r Range) error) error {
	chunks := Chunks(n, workers)
	g, gctx := errgroup.WithContext(ctx)
	for _, c := range chunks {
		c := c
		g.Go(func() error {
			return f(gctx, c)
		})
	}
	return g.Wait()
}
