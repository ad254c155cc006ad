package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/m04kA/experience-booking/internal/service/promos/models"
)

func newPromoCmd(configPath *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "promo",
		Short: "Manage promo codes",
	}

	cmd.AddCommand(newPromoCreateCmd(configPath))
	return cmd
}

func newPromoCreateCmd(configPath *string) *cobra.Command {
	var req models.CreatePromoRequest

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create or update a promo code",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context(), *configPath, false)
			if err != nil {
				return err
			}
			defer rt.Close()

			resp, err := rt.app.Promos().Create(cmd.Context(), &req)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		},
	}

	cmd.Flags().StringVar(&req.Code, "code", "", "promo code (stored upper-case)")
	cmd.Flags().StringVar(&req.Type, "type", "", "discount type: percent or flat")
	cmd.Flags().Float64Var(&req.Amount, "amount", 0, "percent in (0, 100] or flat amount > 0")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
