package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wonklabs/wonk/internal/server"
	"github.com/wonklabs/wonk/internal/session"
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for the browser frontend",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(*configPath)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			srv := server.New(server.Deps{
				Config:   a.cfg,
				Store:    session.NewStore(),
				Registry: a.reg,
				Provider: a.provider,
				Adapter:  a.adapter,
				Logger:   a.log,
			})

			err = srv.ListenAndServe(ctx)
			if err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}
}
