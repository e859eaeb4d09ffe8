package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
	"github.com/Justineneema/cropctl/pkg/sdk"
)

var (
	registerUsername string
	registerPassword string
	registerExpert   bool
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a CropDetector account",
	Long: `Creates a new account. Expert privileges can be requested with --expert,
but the server decides whether they are granted; check the output (or
` + "`cropctl auth status`" + `) for the role you actually received.

When the server returns tokens with the registration response you are
logged in immediately; otherwise run ` + "`cropctl auth login`" + `.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		if err := cfg.Provider.Gate(sdk.RouteRegister, sdk.AccessPublic); err != nil {
			return err
		}
		api, err := cfg.Provider.SDKClient()
		if err != nil {
			return err
		}

		username, password, err := resolveCredentials(cfg, registerUsername, registerPassword)
		if err != nil {
			return err
		}

		identity, err := api.Register(cmd.Context(), username, password, registerExpert)
		if err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		if registerExpert && !identity.Profile.IsExpert {
			pterm.Warning.Println("Expert access was requested but not granted; an administrator must approve it.")
		}
		if identity.AccessToken != "" {
			pterm.Success.Printf("Registered and logged in as %s\n", identity.Profile.Username)
		} else {
			pterm.Success.Printf("Registered %s; run `cropctl auth login` to sign in.\n", identity.Profile.Username)
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerUsername, "username", "", "Account username")
	registerCmd.Flags().StringVar(&registerPassword, "password", "", "Account password")
	registerCmd.Flags().BoolVar(&registerExpert, "expert", false, "Request expert privileges (granted at the server's discretion)")
}
