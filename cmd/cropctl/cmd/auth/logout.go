package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out from CropDetector",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.Provider.Session()
		if err != nil {
			return err
		}

		session.Logout()
		fmt.Println("Logged out successfully")
		return nil
	},
}
