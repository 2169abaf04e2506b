package options

import (
	"github.com/spf13/cobra"
)

// AuthOptions captures the credential flags for login and register.
type AuthOptions struct {
	Email           string
	Password        string
	ConfirmPassword string
	Name            string
}

func AddLoginArgs(cmd *cobra.Command, o *AuthOptions) {
	cmd.Flags().StringVarP(&o.Email, "email", "e", "",
		"Account email address.")
	cmd.Flags().StringVarP(&o.Password, "password", "p", "",
		"Account password.")
}

func AddRegisterArgs(cmd *cobra.Command, o *AuthOptions) {
	AddLoginArgs(cmd, o)
	cmd.Flags().StringVar(&o.ConfirmPassword, "confirm-password", "",
		"Repeat the password.")
	cmd.Flags().StringVarP(&o.Name, "name", "n", "",
		"Display name.")
}
