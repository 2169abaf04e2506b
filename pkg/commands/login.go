package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/commands/options"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/auth"
)

func addLogin(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token.",
		Example: `
airbnb login -e host@example.com -p secret
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := auth.Login{
				Email:    ao.Email,
				Password: ao.Password,
				Client:   c,
				Session:  s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddLoginArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}

func addLogout(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "logout",
		Short: "Sign out and clear the stored session.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := auth.Logout{Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
