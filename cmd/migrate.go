package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/experience-booking/internal/infra/storage/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database schema migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				names, err := migrations.List()
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}

			rt, err := bootstrap(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			applied, err := rt.app.Migrate(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "applied %d migration(s)\n", applied)
			return nil
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "print embedded migrations without applying them")
	return cmd
}
