package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check CropDetector service health",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		health, err := api.Health(ctx)
		if err != nil {
			return fmt.Errorf("health check failed: %w", err)
		}

		pterm.Success.Printf("%s: %s (database %s)\n", health.Service, health.Status, health.Database)
		if health.DatabaseError != "" {
			pterm.Warning.Println(health.DatabaseError)
		}
		return nil
	},
}
