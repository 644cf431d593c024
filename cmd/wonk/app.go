package main

import (
	"fmt"

	"github.com/wonklabs/wonk/internal/config"
	"github.com/wonklabs/wonk/internal/ingest"
	"github.com/wonklabs/wonk/internal/llm"
	"github.com/wonklabs/wonk/internal/logger"
	"github.com/wonklabs/wonk/internal/registry"
	"github.com/wonklabs/wonk/pkg/executor"
)

// app wires the shared dependencies every subcommand needs.
type app struct {
	cfg      *config.Config
	log      logger.Logger
	reg      *registry.Registry
	provider llm.Provider
	adapter  ingest.Adapter
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level)

	reg, err := registry.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	provider, err := llm.New(cfg.Gemini.APIKeys, log)
	if err != nil {
		return nil, fmt.Errorf("create provider: %w", err)
	}

	adapter := ingest.New(cfg, executor.New(), provider, log)

	return &app{
		cfg:      cfg,
		log:      log,
		reg:      reg,
		provider: provider,
		adapter:  adapter,
	}, nil
}
