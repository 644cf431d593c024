package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonklabs/wonk/internal/ingest"
	"github.com/wonklabs/wonk/internal/watcher"
)

func newWatchCommand(configPath *string) *cobra.Command {
	var group string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch a drop folder and generate minutes for every new file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}

			for _, dir := range []string{a.cfg.Paths.Input, a.cfg.Paths.Output} {
				if err := os.MkdirAll(dir, 0755); err != nil {
					return fmt.Errorf("create directory %s: %w", dir, err)
				}
			}

			handler := func(ctx context.Context, filePath string) error {
				transcript, err := a.adapter.Transcribe(ctx, filePath)
				if err != nil {
					return err
				}

				base := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
				outPath := filepath.Join(a.cfg.Paths.Output, base+"_minutes.docx")
				if err := generateMinutes(ctx, a, transcript, group, outPath); err != nil {
					return err
				}

				a.log.Info(ctx, "Minutes written: %s", outPath)
				return nil
			}

			w, err := watcher.New(a.cfg.Paths.Input, ingest.Supported, handler, a.log, a.cfg.Ingest.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			a.log.Info(ctx, "Press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "meeting_summary", "catalog group to generate")

	return cmd
}
