package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/SAI-Aghylas/libppm/internal/manifest"
)

// JobResult reports one finished manifest job.
type JobResult struct {
	Job    manifest.Job
	Result *Result
}

// RunBatch runs every job of m with at most m.Workers jobs in flight.
// The first failure cancels jobs that have not started yet. Results are
// returned in manifest order.
func RunBatch(ctx context.Context, m *manifest.Manifest) ([]JobResult, error) {
	workers := m.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]JobResult, len(m.Jobs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, job := range m.Jobs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := os.MkdirAll(filepath.Dir(job.Output), 0o755); err != nil {
				return fmt.Errorf("%s: creating output dir: %w", job.Name, err)
			}
			// Jobs already run concurrently; keep each transform serial.
			res, err := RunFile(job.Input, job.Output, Options{Ops: job.Ops, Workers: 1})
			if err != nil {
				return fmt.Errorf("%s: %w", job.Name, err)
			}
			results[i] = JobResult{Job: job, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
