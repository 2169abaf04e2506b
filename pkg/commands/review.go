package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/trip"
)

func addReview(topLevel *cobra.Command) {
	var rating int
	var comments string
	var id int

	cmd := &cobra.Command{
		Use:   "review <listing id>",
		Short: "Review a listing you have stayed at.",
		Example: `
airbnb review 42 --rating 5 --comments "Great stay"
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
			n := trip.Review{
				ListingID: id,
				Rating:    rating,
				Comments:  comments,
				Client:    c,
				Session:   s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().IntVar(&rating, "rating", 0, "Star rating, 1 to 5.")
	cmd.Flags().StringVar(&comments, "comments", "", "Review text.")

	topLevel.AddCommand(cmd)
}
