package commands

import (
	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/commands/options"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/session"
)

var (
	output = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "airbnb",
		Short: "A rental marketplace on the command line.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addLogin(topLevel)
	addRegister(topLevel)
	addLogout(topLevel)
	addListings(topLevel)
	addListing(topLevel)
	addBrowse(topLevel)
	addHosting(topLevel)
	addBook(topLevel)
	addTrips(topLevel)
	addBookings(topLevel)
	addReview(topLevel)
	addVersion(topLevel)
}

// loadEnv wires the gateway and session store every command needs. The
// stored token travels into the client so authenticated calls carry it.
func loadEnv() (*client.Client, *session.Store, error) {
	cfg, err := session.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	s, err := session.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	return client.New(cfg.BaseURL(), s.Token()), s, nil
}
