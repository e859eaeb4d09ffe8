package disease

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
	Short: "List the disease catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		diseases, err := api.ListDiseases(ctx)
		if err != nil {
			return fmt.Errorf("failed to list diseases: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSPECIES\tTREATMENT")
		for _, d := range diseases {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", d.ID, d.Name, d.Species, d.Treatment)
		}
		w.Flush()

		return nil
	},
}
