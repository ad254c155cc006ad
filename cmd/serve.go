package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			rt, err := bootstrap(ctx, *configPath, true)
			if err != nil {
				return err
			}
			defer rt.Close()

			rt.log.Info("Starting experience-booking, configuration loaded from %s", *configPath)

			if migrate || rt.cfg.Database.AutoMigrate {
				applied, err := rt.app.Migrate(ctx)
				if err != nil {
					return err
				}
				rt.log.Info("Migrations applied: %d", applied)
			}

			return rt.app.Run(ctx)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply database migrations before start (in addition to database.auto_migrate)")
	return cmd
}
