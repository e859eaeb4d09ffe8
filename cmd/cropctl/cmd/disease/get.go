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

var getCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Show one disease catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid disease id %q", args[0])
		}

		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.Provider.Gate(sdk.RouteDiseases, sdk.AccessSession); err != nil {
			return err
		}
		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		disease, err := api.GetDisease(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get disease %d: %w", id, err)
		}

		pterm.DefaultSection.Printf("%s (%s)\n", disease.Name, disease.Species)
		pterm.Info.Printf("Description: %s\n", disease.Description)
		pterm.Info.Printf("Treatment: %s\n", disease.Treatment)
		if disease.CareTips != "" {
			pterm.Info.Printf("Care tips: %s\n", disease.CareTips)
		}
		if disease.HealthyImageURL != "" {
			pterm.Info.Printf("Healthy reference: %s\n", disease.HealthyImageURL)
		}
		return nil
	},
}
