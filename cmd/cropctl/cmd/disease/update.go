package disease

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
	"github.com/Justineneema/cropctl/pkg/sdk"
)

var updateInput sdk.DiseaseInput

var updateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Replace a disease catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid disease id %q", args[0])
		}

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

		disease, err := api.UpdateDisease(ctx, id, updateInput)
		if err != nil {
			return fmt.Errorf("failed to update disease %d: %w", id, err)
		}

		pterm.Success.Printf("Updated disease %d: %s (%s)\n", disease.ID, disease.Name, disease.Species)
		return nil
	},
}

func init() {
	inputFlags(updateCmd, &updateInput)
	updateCmd.MarkFlagRequired("name")
	updateCmd.MarkFlagRequired("species")
}
