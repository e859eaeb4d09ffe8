package disease

import (
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/pkg/sdk"
)

// DiseaseCmd is the parent command for disease catalog operations.
var DiseaseCmd = &cobra.Command{
	Use:   "disease",
	Short: "Manage the disease catalog",
	Long: `Commands for browsing and editing the disease reference catalog.
Editing requires an expert or staff account.`,
}

func init() {
	DiseaseCmd.AddCommand(listCmd)
	DiseaseCmd.AddCommand(getCmd)
	DiseaseCmd.AddCommand(createCmd)
	DiseaseCmd.AddCommand(updateCmd)
	DiseaseCmd.AddCommand(removeCmd)
}

// inputFlags binds the writable disease fields onto a command, shared by
// create and update.
func inputFlags(cmd *cobra.Command, input *sdk.DiseaseInput) {
	cmd.Flags().StringVar(&input.Name, "name", "", "Disease name")
	cmd.Flags().StringVar(&input.Species, "species", "", "Affected crop species")
	cmd.Flags().StringVar(&input.Description, "description", "", "Description of the disease")
	cmd.Flags().StringVar(&input.Treatment, "treatment", "", "Recommended treatment")
	cmd.Flags().StringVar(&input.HealthyImageURL, "healthy-image-url", "", "URL of a healthy reference image")
	cmd.Flags().StringVar(&input.CareTips, "care-tips", "", "Preventive care tips")
}
