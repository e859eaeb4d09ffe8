package detections

import (
	"fmt"

	"github.com/spf13/cobra"
)

// DetectionsCmd is the parent command for detection history operations.
var DetectionsCmd = &cobra.Command{
	Use:   "detections",
	Short: "Browse detection history",
	Long: `Commands for browsing stored diagnoses. Regular accounts see their own
history; expert and staff accounts see everyone's.`,
}

func init() {
	DetectionsCmd.AddCommand(listCmd)
	DetectionsCmd.AddCommand(getCmd)
}

// formatConfidence renders a 0..1 confidence as a percentage, with "-" for
// entries that predate confidence tracking.
func formatConfidence(confidence float64) string {
	if confidence <= 0 {
		return "-"
	}
	return fmt.Sprintf("%.0f%%", confidence*100)
}
