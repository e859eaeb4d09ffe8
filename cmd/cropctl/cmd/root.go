package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/cmd/auth"
	"github.com/Justineneema/cropctl/cmd/cropctl/cmd/detect"
	"github.com/Justineneema/cropctl/cmd/cropctl/cmd/detections"
	"github.com/Justineneema/cropctl/cmd/cropctl/cmd/disease"
	"github.com/Justineneema/cropctl/cmd/cropctl/internal/client"
	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "cropctl",
	Short: "CropDetector CLI - crop disease diagnosis client",
	Long: `cropctl is the command-line client for the CropDetector service. Use it to
submit crop photos for diagnosis, browse your detection history, and manage
the disease catalog.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envCfg, err := config.FromEnv()
		if err != nil {
			return fmt.Errorf("read environment: %w", err)
		}
		if !cmd.Flags().Changed("server") && envCfg.ServerURL != "" {
			serverURL = envCfg.ServerURL
		}
		if envCfg.NonInteractive {
			nonInteractive = true
		}

		cfg := &config.GlobalConfig{
			ServerURL:      serverURL,
			NonInteractive: nonInteractive,
			Timeout:        envCfg.Timeout,
			Provider:       client.NewProvider(serverURL, envCfg.Timeout),
		}
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:8000", "CropDetector API server URL (also set via CROPCTL_SERVER)")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via CROPCTL_NON_INTERACTIVE=1)")
	rootCmd.AddCommand(auth.AuthCmd)
	rootCmd.AddCommand(detect.DetectCmd)
	rootCmd.AddCommand(detections.DetectionsCmd)
	rootCmd.AddCommand(disease.DiseaseCmd)
	rootCmd.AddCommand(statusCmd)
}
