package detections

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
	"github.com/Justineneema/cropctl/pkg/sdk"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List detection history",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		detections, err := api.ListDetections(ctx)
		if err != nil {
			return fmt.Errorf("failed to list detections: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSER\tDISEASE\tCONFIDENCE\tDETECTED_AT")
		for _, d := range detections {
			user := "-"
			if d.User != nil {
				user = d.User.Username
			}
			disease := "-"
			if d.PredictedDisease != nil {
				disease = d.PredictedDisease.Name
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				d.ID, user, disease, formatConfidence(d.Confidence), d.DetectedAt.Format(time.RFC3339))
		}
		w.Flush()

		return nil
	},
}
