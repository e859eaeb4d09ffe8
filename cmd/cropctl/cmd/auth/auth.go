package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/Justineneema/cropctl/cmd/cropctl/internal/config"
)

// AuthCmd is the parent command for auth operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage authentication",
	Long:  `Commands for managing the login session and account registration.`,
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(statusCmd)
}

// resolveCredentials returns the username and password from flags, prompting
// for whatever is missing. In non-interactive mode missing values are an
// error instead of a prompt.
func resolveCredentials(cfg *config.GlobalConfig, username, password string) (string, string, error) {
	if username == "" {
		if cfg.NonInteractive {
			return "", "", fmt.Errorf("--username is required in non-interactive mode")
		}
		value, err := pterm.DefaultInteractiveTextInput.Show("Username")
		if err != nil {
			return "", "", fmt.Errorf("read username: %w", err)
		}
		username = value
	}
	if password == "" {
		if cfg.NonInteractive {
			return "", "", fmt.Errorf("--password is required in non-interactive mode")
		}
		value, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
		if err != nil {
			return "", "", fmt.Errorf("read password: %w", err)
		}
		password = value
	}
	return username, password, nil
}
