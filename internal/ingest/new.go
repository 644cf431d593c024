package ingest

import (
	"context"

	"github.com/wonklabs/wonk/internal/config"
	"github.com/wonklabs/wonk/internal/logger"
	"github.com/wonklabs/wonk/pkg/executor"
)

// ImageDescriber transcribes and describes image uploads.
type ImageDescriber interface {
	DescribeImage(ctx context.Context, model string, data []byte, mimeType string) (string, error)
}

type implAdapter struct {
	cfg      *config.Config
	executor executor.Executor
	vision   ImageDescriber
	logger   logger.Logger
}

// New creates an Adapter dispatching to whisper, ffmpeg, document
// converters, and the vision model depending on file type.
func New(cfg *config.Config, exec executor.Executor, vision ImageDescriber, log logger.Logger) Adapter {
	return &implAdapter{
		cfg:      cfg,
		executor: exec,
		vision:   vision,
		logger:   log,
	}
}
