package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/m04kA/experience-booking/internal/seed"
)

func newSeedCmd(configPath *string) *cobra.Command {
	var reset bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo catalog and promo codes",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			if _, err := rt.app.Migrate(cmd.Context()); err != nil {
				return err
			}

			res, err := rt.app.Seeder().Run(cmd.Context(), seed.Options{Reset: reset})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "promos upserted: %d\n", res.PromosUpserted)
			if res.Skipped {
				fmt.Fprintln(out, "experiences already present, use --reset to replace them")
				return nil
			}
			fmt.Fprintf(out, "experiences created: %d\n", res.ExperiencesCreated)
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "delete existing experiences and promos before seeding")
	return cmd
}
