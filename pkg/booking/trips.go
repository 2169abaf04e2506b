package booking

import (
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
)

// Trip is one of the viewer's own bookings against a listing.
type Trip struct {
	ID     int
	Start  string
	End    string
	Status string
}

// TripsFor filters the viewer's bookings for one listing, in feed order.
func TripsFor(bookings []client.Booking, listingID int, viewer string) []Trip {
	out := make([]Trip, 0)
	for _, b := range bookings {
		if b.Owner != viewer || !b.ForListing(listingID) {
			continue
		}
		out = append(out, Trip{
			ID:     b.ID,
			Start:  b.DateRange.Start,
			End:    b.DateRange.End,
			Status: b.Status,
		})
	}
	return out
}

// ReviewPermission returns a booking id that entitles the viewer to review
// the listing: any of their accepted bookings.
func ReviewPermission(trips []Trip) (int, bool) {
	for _, t := range trips {
		if t.Status == client.StatusAccepted {
			return t.ID, true
		}
	}
	return 0, false
}

// Nights is the stay length used for the total price of a new booking.
func Nights(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}
