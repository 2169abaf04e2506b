package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/commands/options"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/auth"
)

func addRegister(topLevel *cobra.Command) {
	ao := &options.AuthOptions{}

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in.",
		Example: `
airbnb register -e host@example.com -p secret --confirm-password secret -n "Host Name"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := auth.Register{
				Email:           ao.Email,
				Password:        ao.Password,
				ConfirmPassword: ao.ConfirmPassword,
				Name:            ao.Name,
				Client:          c,
				Session:         s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRegisterArgs(cmd, ao)
	topLevel.AddCommand(cmd)
}
