package ingest

import "context"

// Adapter normalizes heterogeneous uploaded files into plain-text
// transcripts.
type Adapter interface {
	// Transcribe converts a single file into text.
	Transcribe(ctx context.Context, path string) (string, error)

	// TranscribeBatch converts a batch of files. One item's failure does
	// not abort the others; successful transcripts are joined with blank
	// lines in input order, and per-item failures are reported alongside.
	TranscribeBatch(ctx context.Context, paths []string) (string, []ItemError)
}

// ItemError reports one failed item of a batch.
type ItemError struct {
	Path string
	Err  error
}
