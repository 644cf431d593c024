package watcher

import (
	"fmt"

	"github.com/fsnotify/fsnotify"

	"github.com/wonklabs/wonk/internal/logger"
)

// New creates a Watcher over inputDir. Files rejected by accept are
// ignored; accepted files are handed to the handler, at most maxConcurrent
// at a time.
func New(inputDir string, accept func(string) bool, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inputDir:  inputDir,
		accept:    accept,
		handler:   handler,
		logger:    log,
		watcher:   watcher,
		semaphore: make(chan struct{}, maxConcurrent),
	}, nil
}
