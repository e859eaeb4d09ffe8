package auth

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		identity := session.Current()
		if identity == nil {
			pterm.Info.Println("Not logged in.")
			return nil
		}

		pterm.DefaultSection.Println("Session")
		pterm.Info.Printf("Logged in as: %s (id %d)\n", identity.Profile.Username, identity.Profile.ID)

		role := "member"
		if identity.Elevated() {
			role = "expert/staff"
		}
		pterm.Info.Printf("Role: %s\n", role)

		if exp, ok := identity.TokenExpiresAt(); ok {
			pterm.Info.Printf("Access token expires: %s\n", exp.Format(time.RFC1123))
			if time.Now().After(exp) {
				pterm.Warning.Println("The token has expired; run `cropctl auth login`.")
			}
		}
		return nil
	},
}
