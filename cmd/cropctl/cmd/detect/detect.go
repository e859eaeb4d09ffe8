package detect

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
	"github.com/Justineneema/cropctl/pkg/sdk"
)

// DetectCmd submits a photo for diagnosis.
var DetectCmd = &cobra.Command{
	Use:   "detect <image>",
	Short: "Submit a crop photo for diagnosis",
	Long: `Uploads a crop photo to the CropDetector service and prints the diagnosis.
The result is also stored in your detection history.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.Provider.Gate(sdk.RouteUpload, sdk.AccessSession); err != nil {
			return err
		}
		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		image, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("open image: %w", err)
		}
		defer image.Close()

		// Uploads can be slow on rural connections; give them room.
		ctx, cancel := context.WithTimeout(cmd.Context(), 60*time.Second)
		defer cancel()

		spinner, _ := pterm.DefaultSpinner.Start("Analyzing image...")
		result, err := api.Detect(ctx, args[0], image)
		if err != nil {
			if spinner != nil {
				spinner.Fail("Diagnosis failed")
			}
			return err
		}
		if spinner != nil {
			spinner.Success("Diagnosis complete")
		}

		pterm.DefaultSection.Println("Diagnosis")
		if result.PredictedDisease == nil {
			pterm.Info.Println("No disease identified.")
		} else {
			pterm.Info.Printf("Disease: %s (%s)\n", result.PredictedDisease.Name, result.CropName)
			pterm.Info.Printf("Confidence: %.0f%%\n", result.Confidence*100)
		}
		if result.Recommendation != "" {
			pterm.Info.Printf("Recommendation: %s\n", result.Recommendation)
		}
		if result.CareTips != "" {
			pterm.Info.Printf("Care tips: %s\n", result.CareTips)
		}
		if result.ID != 0 {
			pterm.Info.Printf("Saved to history as entry %d\n", result.ID)
		}
		return nil
	},
}
