package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "wonk",
		Short: "Turn meeting recordings and documents into structured minutes",
		Long: `Wonk ingests meeting recordings or documents, obtains a transcript, and
produces structured meeting artifacts (summaries, key points, action items,
sentiment) exportable as a Word document. Action items can be expanded into
drafted emails, chat messages, and memos.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to config file")

	cmd.AddCommand(newServeCommand(&configPath))
	cmd.AddCommand(newProcessCommand(&configPath))
	cmd.AddCommand(newWatchCommand(&configPath))

	return cmd
}
