package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/commands/options"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/host"
)

func addHosting(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "hosting",
		Short: "Manage your hostings.",
		Long: `Manage your hostings.

Listings created or edited in this session show under Current until you
log out; the rest split into Published and Unpublished.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := host.List{Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addHostingCreate(cmd)
	addHostingEdit(cmd)
	addHostingDelete(cmd)
	addHostingPublish(cmd)
	addHostingUnpublish(cmd)

	topLevel.AddCommand(cmd)
}

// listingIDArg parses the single positional listing id.
func listingIDArg(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.New("requires a listing id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.New("listing id must be a number")
	}
	return id, nil
}

func addHostingCreate(topLevel *cobra.Command) {
	lo := &options.ListingOptions{}

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a hosting.",
		Example: `
airbnb hosting create -t "Beach House" --street1 "1 Beach Rd" --city Sydney \
  --postcode 2000 -p 250 --bedroom 2:1 --bathrooms 2 --thumbnail house.png
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			payload, err := lo.Payload()
			if err != nil {
				return output.HandleError(err)
			}
			n := host.Create{Payload: payload, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddListingArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addHostingEdit(topLevel *cobra.Command) {
	lo := &options.ListingOptions{}
	var id int

	cmd := &cobra.Command{
		Use:   "edit <listing id>",
		Short: "Edit a hosting.",
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			id, err = listingIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			payload, err := lo.Payload()
			if err != nil {
				return output.HandleError(err)
			}
			n := host.Edit{ID: id, Payload: payload, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddListingArgs(cmd, lo)
	topLevel.AddCommand(cmd)
}

func addHostingDelete(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:     "delete <listing id>",
		Aliases: []string{"remove"},
		Short:   "Delete a hosting.",
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			id, err = listingIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := host.Delete{ID: id, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addHostingPublish(topLevel *cobra.Command) {
	do := &options.DateRangeOptions{}
	var id int

	cmd := &cobra.Command{
		Use:   "publish <listing id>",
		Short: "Publish a hosting with availability windows.",
		Example: `
airbnb hosting publish 42 -r 2023-12-01:2023-12-30
airbnb hosting publish 42 -r 2023-12-01:2023-12-30 -r 2024-01-10:2024-01-20
`,
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			id, err = listingIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			ranges, err := do.Availability()
			if err != nil {
				return output.HandleError(err)
			}
			n := host.Publish{ID: id, Ranges: ranges, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, do)
	topLevel.AddCommand(cmd)
}

func addHostingUnpublish(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "unpublish <listing id>",
		Short: "Unpublish a hosting.",
		Args: func(_ *cobra.Command, args []string) error {
			var err error
			id, err = listingIDArg(args)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := host.Unpublish{ID: id, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
