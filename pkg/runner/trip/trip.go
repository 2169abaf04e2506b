// Package trip holds the guest-side runners: making, listing, and
// cancelling bookings, plus review submission.
package trip

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/availability"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/booking"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/printers"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/session"
)

const layoutISO = "2006-01-02"

// Book requests a stay. The range must sit fully inside one of the
// listing's availability windows with start strictly before end; the total
// price is nights times the nightly price.
type Book struct {
	ListingID int
	Range     availability.Range

	Client  *client.Client
	Session *session.Store
}

func (n *Book) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	if n.Range.Start.IsZero() || n.Range.End.IsZero() {
		return errors.New("Booking Error: Please fill all the date")
	}
	if !n.Range.Start.Before(n.Range.End) {
		return errors.New("Booking Error: Start date cannot be same or after end date")
	}

	detail, err := n.Client.Listing(ctx, n.ListingID)
	if err != nil {
		return fmt.Errorf("Listing Detail Error: %w", err)
	}

	rec := listing.NewFilterRecord(n.ListingID, detail, false)
	inside := false
	for _, w := range rec.Windows {
		if w.Contains(n.Range.Start, n.Range.End) {
			inside = true
			break
		}
	}
	if !inside {
		return errors.New("Booking Error: Date range is not available for this listing")
	}

	nights := booking.Nights(n.Range.Start, n.Range.End)
	dr := client.DateRange{
		Start: n.Range.Start.Format(layoutISO),
		End:   n.Range.End.Format(layoutISO),
	}
	id, err := n.Client.NewBooking(ctx, n.ListingID, dr, nights*detail.Price)
	if err != nil {
		return fmt.Errorf("Booking Error: %w", err)
	}

	pp := printers.PrettyPrint{}
	pp.Success("Booking Success")
	fmt.Printf("booking id: %d, total price: $%s\n", id, printers.FormatNumber(nights*detail.Price))
	return nil
}

// List shows the viewer's booking history for one listing.
type List struct {
	ListingID int

	Client  *client.Client
	Session *session.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	bookings, err := n.Client.Bookings(ctx)
	if err != nil {
		return fmt.Errorf("Booking Detail Load Error: %w", err)
	}

	trips := booking.TripsFor(bookings, n.ListingID, n.Session.Email())
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Trips(trips)
	return nil
}

// Cancel deletes one of the viewer's pending bookings.
type Cancel struct {
	BookingID int

	Client *client.Client
}

func (n *Cancel) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	if err := n.Client.DeleteBooking(ctx, n.BookingID); err != nil {
		return fmt.Errorf("Delete Booking Error: %w", err)
	}

	pp := printers.PrettyPrint{}
	pp.Success("Delete Booking Success")
	return nil
}

// Review submits a rating and comment for a listing the viewer has an
// accepted booking on.
type Review struct {
	ListingID int
	Rating    int
	Comments  string

	Client  *client.Client
	Session *session.Store
}

func (n *Review) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	if n.Rating < 1 || n.Rating > 5 {
		return errors.New("Submit Review Error: Please select your rating")
	}
	if n.Comments == "" {
		return errors.New("Submit Review Error: Please enter your comments")
	}

	bookings, err := n.Client.Bookings(ctx)
	if err != nil {
		return fmt.Errorf("Submit Review Error: %w", err)
	}
	trips := booking.TripsFor(bookings, n.ListingID, n.Session.Email())
	permit, ok := booking.ReviewPermission(trips)
	if !ok {
		return errors.New("Submit Review Error: an accepted booking is required to review")
	}

	review := client.Review{
		Owner:    n.Session.Email(),
		PostedOn: time.Now().Format(layoutISO),
		Rating:   float64(n.Rating),
		Comments: n.Comments,
	}
	if err := n.Client.SubmitReview(ctx, n.ListingID, permit, review); err != nil {
		return fmt.Errorf("Submit Review Error: %w", err)
	}

	pp := printers.PrettyPrint{}
	pp.Success("Submit Review Success")
	return nil
}
