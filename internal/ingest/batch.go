package ingest

import (
	"context"
	"strings"
	"sync"
)

// TranscribeBatch converts every file in the batch, a bounded number at a
// time. A failed item is reported and skipped; it never aborts the others.
// Successful transcripts join with blank lines in input order.
func (a *implAdapter) TranscribeBatch(ctx context.Context, paths []string) (string, []ItemError) {
	if len(paths) == 0 {
		return "", nil
	}

	results := make([]string, len(paths))
	errs := make([]error, len(paths))

	sem := newSemaphore(a.cfg.Ingest.MaxConcurrent)
	var wg sync.WaitGroup

	for i, path := range paths {
		if err := sem.acquire(ctx); err != nil {
			errs[i] = err
			continue
		}

		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			defer sem.release()

			text, err := a.Transcribe(ctx, path)
			if err != nil {
				a.logger.Error(ctx, "Failed to ingest %s: %v", path, err)
				errs[i] = err
				return
			}
			results[i] = text
		}(i, path)
	}

	wg.Wait()

	var parts []string
	var itemErrs []ItemError
	for i, path := range paths {
		if errs[i] != nil {
			itemErrs = append(itemErrs, ItemError{Path: path, Err: errs[i]})
			continue
		}
		if results[i] != "" {
			parts = append(parts, results[i])
		}
	}

	return strings.Join(parts, "\n\n"), itemErrs
}
