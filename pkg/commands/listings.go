package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/commands/options"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/browse"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/feed"
)

func addListings(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}

	cmd := &cobra.Command{
		Use:   "listings",
		Short: "Browse the public listing feed.",
		Long: `Browse the public listing feed.

Without flags, listings you have booked before come first and the rest
sort by title. At most one search or filter applies per run.`,
		Example: `
airbnb listings
airbnb listings --search beach
airbnb listings --start 2023-12-05 --end 2023-12-15
airbnb listings --min-price 100 --max-price 300
airbnb listings --rating --reverse
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := feed.Feed{
				Filter:      fo.Filter(),
				ShowAddress: fo.Address,
				Viewer:      s.Email(),
				Client:      c,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddFilterArgs(cmd, fo)
	topLevel.AddCommand(cmd)
}

func addListing(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "listing <listing id>",
		Short: "Show a listing's full detail.",
		Long: `Show a listing's full detail: address, amenities, availability
windows, and reviews, plus your own bookings against it when logged in.`,
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
			n := feed.Detail{ListingID: id, Viewer: s.Email(), Client: c}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addBrowse(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the feed interactively.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := browse.Browse{Viewer: s.Email(), Client: c}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
