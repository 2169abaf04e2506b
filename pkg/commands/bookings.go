package commands

import (
	"context"
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/availability"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/commands/options"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/triage"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/runner/trip"
)

func addBook(topLevel *cobra.Command) {
	do := &options.DateRangeOptions{}
	var id int

	cmd := &cobra.Command{
		Use:   "book <listing id>",
		Short: "Request a stay at a listing.",
		Example: `
airbnb book 42 -r 2023-12-05:2023-12-15
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
			if len(do.Ranges) != 1 {
				return output.HandleError(errors.New("Booking Error: exactly one --range is required"))
			}
			rng, err := availability.Parse(do.Ranges[0])
			if err != nil {
				return output.HandleError(err)
			}
			n := trip.Book{ListingID: id, Range: rng, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddRangeArgs(cmd, do)
	topLevel.AddCommand(cmd)
}

func addTrips(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "trips <listing id>",
		Short: "Show your booking history for a listing.",
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
			n := trip.List{ListingID: id, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addTripsCancel(cmd)
	topLevel.AddCommand(cmd)
}

func addTripsCancel(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "cancel <booking id>",
		Short: "Cancel one of your bookings.",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a booking id")
			}
			var err error
			id, err = strconv.Atoi(args[0])
			if err != nil {
				return errors.New("booking id must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, _, err := loadEnv()
			if err != nil {
				return err
			}
			n := trip.Cancel{BookingID: id, Client: c}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}

func addBookings(topLevel *cobra.Command) {
	var id int

	cmd := &cobra.Command{
		Use:   "bookings <listing id>",
		Short: "Triage booking requests for one of your listings.",
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
			n := triage.Show{ListingID: id, Client: c, Session: s}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	addBookingDecision(cmd, true)
	addBookingDecision(cmd, false)
	topLevel.AddCommand(cmd)
}

func addBookingDecision(topLevel *cobra.Command, accept bool) {
	use := "accept"
	short := "Accept a pending booking."
	if !accept {
		use = "decline"
		short = "Decline a pending booking."
	}
	var listingID, bookingID int

	cmd := &cobra.Command{
		Use:   use + " <listing id> <booking id>",
		Short: short,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a listing id and a booking id")
			}
			var err1, err2 error
			listingID, err1 = strconv.Atoi(args[0])
			bookingID, err2 = strconv.Atoi(args[1])
			if err1 != nil || err2 != nil {
				return errors.New("ids must be numbers")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			c, s, err := loadEnv()
			if err != nil {
				return err
			}
			n := triage.Decide{
				ListingID: listingID,
				BookingID: bookingID,
				Accept:    accept,
				Client:    c,
				Session:   s,
			}
			err = n.Do(context.Background())
			return output.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
