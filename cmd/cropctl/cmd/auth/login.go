package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
	"github.com/Justineneema/cropctl/pkg/sdk"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with CropDetector",
	Long: `Authenticates with the CropDetector server using a username and password.

The issued token is stored under ~/.cropctl and attached to every
subsequent command until you log out or the server rejects it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.Provider.Gate(sdk.RouteLogin, sdk.AccessPublic); err != nil {
			return err
		}
		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		username, password, err := resolveCredentials(cfg, loginUsername, loginPassword)
		if err != nil {
			return err
		}

		identity, err := api.Login(cmd.Context(), username, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		pterm.Success.Printf("Logged in as %s\n", identity.Profile.Username)
		if identity.Elevated() {
			pterm.Info.Println("Expert tools are available; see `cropctl disease --help`.")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Account username")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password")
}
