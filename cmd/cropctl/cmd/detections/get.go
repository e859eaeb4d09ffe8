package detections

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
	Short: "Show one detection history entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid detection id %q", args[0])
		}

		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.Provider.Gate(sdk.RouteHistory, sdk.AccessSession); err != nil {
			return err
		}
		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		detection, err := api.GetDetection(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get detection %d: %w", id, err)
		}

		pterm.DefaultSection.Printf("Detection %d\n", detection.ID)
		if detection.User != nil {
			pterm.Info.Printf("User: %s\n", detection.User.Username)
		}
		if detection.PredictedDisease != nil {
			pterm.Info.Printf("Disease: %s (%s)\n", detection.PredictedDisease.Name, detection.PredictedDisease.Species)
			pterm.Info.Printf("Treatment: %s\n", detection.PredictedDisease.Treatment)
		}
		pterm.Info.Printf("Confidence: %s\n", formatConfidence(detection.Confidence))
		pterm.Info.Printf("Detected at: %s\n", detection.DetectedAt.Format(time.RFC1123))
		if detection.Image != "" {
			pterm.Info.Printf("Image: %s\n", detection.Image)
		}
		return nil
	},
}
