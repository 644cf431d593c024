package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wonklabs/wonk/internal/exporter"
	"github.com/wonklabs/wonk/internal/pipeline"
)

func newProcessCommand(configPath *string) *cobra.Command {
	var group string
	var outPath string

	cmd := &cobra.Command{
		Use:   "process <files...>",
		Short: "Ingest files, generate minutes, and write a Word document",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}
			ctx := cmd.Context()

			transcript, itemErrs := a.adapter.TranscribeBatch(ctx, args)
			for _, ie := range itemErrs {
				a.log.Error(ctx, "Skipping %s: %v", ie.Path, ie.Err)
			}
			if transcript == "" {
				return fmt.Errorf("no transcript produced from %d file(s)", len(args))
			}

			if outPath == "" {
				outPath = filepath.Join(a.cfg.Paths.Output, a.cfg.Export.Filename)
			}

			if err := generateMinutes(ctx, a, transcript, group, outPath); err != nil {
				return err
			}

			fmt.Printf("Minutes written: %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&group, "group", "g", "meeting_summary", "catalog group to generate")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output document path")

	return cmd
}

// generateMinutes runs every template of a catalog group against the
// transcript and exports the result.
func generateMinutes(ctx context.Context, a *app, transcript, group, outPath string) error {
	templates, err := a.reg.Templates(group)
	if err != nil {
		return err
	}

	p := pipeline.New(a.reg, a.provider, a.log, a.cfg.Gemini.Model)
	for _, tmpl := range templates {
		if _, err := p.AddFromTemplate(group, tmpl.ID); err != nil {
			return err
		}
	}

	set, err := p.Generate(ctx, transcript)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	return exporter.ExportFile(set, outPath)
}
