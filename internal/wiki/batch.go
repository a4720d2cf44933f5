package wiki

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"wikicorpus/internal/observability/metrics"
)

// forEachBounded runs fn over items with at most limit concurrent
// executions. Missing-page outcomes are collected into the second return
// value instead of failing the batch; any other error cancels the
// remaining work and is returned. Empty input returns immediately
// without spawning anything.
func forEachBounded[I, T any](ctx context.Context, items []I, limit int, fn func(context.Context, I) (T, error)) ([]T, []string, error) {
	if len(items) == 0 {
		return nil, nil, nil
	}
	if limit <= 0 {
		limit = DefaultMaxConcurrency
	}

	var (
		mu      sync.Mutex
		results []T
		missing []string
	)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for _, item := range items {
		item := item
		eg.Go(func() error {
			result, err := fn(egCtx, item)
			if err != nil {
				var notFound *PageNotFoundError
				if errors.As(err, &notFound) {
					mu.Lock()
					missing = append(missing, notFound.Title)
					mu.Unlock()
					metrics.RecordPageMissing()
					return nil
				}
				return err
			}
			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	return results, missing, nil
}

// mapBounded runs fn over items with at most limit concurrent
// executions, preserving input order in the result slice. Unlike
// forEachBounded every error propagates.
func mapBounded[I, T any](ctx context.Context, items []I, limit int, fn func(context.Context, I) (T, error)) ([]T, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if limit <= 0 {
		limit = DefaultMaxConcurrency
	}

	results := make([]T, len(items))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, item := range items {
		i, item := i, item
		eg.Go(func() error {
			result, err := fn(egCtx, item)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
