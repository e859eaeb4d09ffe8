package disease

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
	"github.com/Justineneema/cropctl/pkg/sdk"
)

var createInput sdk.DiseaseInput

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a disease catalog entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.Provider.Gate(sdk.RouteAdmin, sdk.AccessElevated); err != nil {
			return err
		}
		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		disease, err := api.CreateDisease(ctx, createInput)
		if err != nil {
			return fmt.Errorf("failed to create disease: %w", err)
		}

		pterm.Success.Printf("Created disease %d: %s (%s)\n", disease.ID, disease.Name, disease.Species)
		return nil
	},
}

func init() {
	inputFlags(createCmd, &createInput)
	createCmd.MarkFlagRequired("name")
	createCmd.MarkFlagRequired("species")
}
