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

var removeYes bool

var removeCmd = &cobra.Command{
	Use:   "remove <id>",
	Short: "Delete a disease catalog entry",
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

		if !removeYes {
			if cfg.NonInteractive {
				return fmt.Errorf("refusing to delete without --yes in non-interactive mode")
			}
			ok, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete disease %d?", id))
			if err != nil {
				return fmt.Errorf("read confirmation: %w", err)
			}
			if !ok {
				fmt.Println("Aborted")
				return nil
			}
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
		defer cancel()

		if err := api.DeleteDisease(ctx, id); err != nil {
			return fmt.Errorf("failed to delete disease %d: %w", id, err)
		}

		pterm.Success.Printf("Deleted disease %d\n", id)
		return nil
	},
}

func init() {
	removeCmd.Flags().BoolVar(&removeYes, "yes", false, "Skip the confirmation prompt")
}
