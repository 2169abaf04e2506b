// Package feed loads the public listing feed and renders it through the
// order/filter engine.
package feed

import (
	"context"
	"fmt"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/booking"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/printers"
)

type Feed struct {
	Filter      listing.Filter
	ShowAddress bool

	// Viewer is the signed-in email, empty when browsing anonymously.
	Viewer string

	Client *client.Client
}

func (n *Feed) Do(ctx context.Context) error {
	table, err := Load(ctx, n.Client, n.Viewer)
	if err != nil {
		return err
	}

	order, err := table.Order(n.Filter)
	if err != nil {
		return fmt.Errorf("Filter Error: %w", err)
	}

	pp := printers.PrettyPrint{ShowAddress: n.ShowAddress}
	pp.NewLine()
	pp.Feed(table, order)
	return nil
}

// Detail renders one listing's full record: address, metadata, amenities,
// availability windows, and reviews, plus the viewer's own booking history
// for it when logged in.
type Detail struct {
	ListingID int
	Viewer    string

	Client *client.Client
}

func (n *Detail) Do(ctx context.Context) error {
	d, err := n.Client.Listing(ctx, n.ListingID)
	if err != nil {
		return fmt.Errorf("Listing Detail Error: %w", err)
	}

	var trips []booking.Trip
	if n.Viewer != "" && n.Client.Token != "" {
		bookings, err := n.Client.Bookings(ctx)
		if err != nil {
			return fmt.Errorf("Booking Detail Load Error: %w", err)
		}
		trips = booking.TripsFor(bookings, n.ListingID, n.Viewer)
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Detail(n.ListingID, d)
	if len(trips) > 0 {
		pp.NewLine()
		pp.Title("Your Bookings")
		pp.Trips(trips)
	}
	return nil
}

// Load fetches the feed and rebuilds the filter table wholesale: one detail
// fetch per published listing, each annotated with whether the viewer has a
// non-declined booking against it. Detail fetches run sequentially; a feed
// entry whose detail fetch fails is skipped, matching the browser client.
func Load(ctx context.Context, c *client.Client, viewer string) (*listing.Table, error) {
	booked := make(map[int]bool)
	if viewer != "" && c.Token != "" {
		bookings, err := c.Bookings(ctx)
		if err != nil {
			return nil, fmt.Errorf("Fetch Error: %w", err)
		}
		for _, b := range bookings {
			if b.Status == client.StatusDeclined {
				continue
			}
			if id, err := b.ListingID.Int64(); err == nil {
				booked[int(id)] = true
			}
		}
	}

	stubs, err := c.Listings(ctx)
	if err != nil {
		return nil, fmt.Errorf("Fetch Error: %w", err)
	}

	table := listing.NewTable()
	for _, stub := range stubs {
		detail, err := c.Listing(ctx, stub.ID)
		if err != nil || !detail.Published {
			continue
		}
		table.Add(listing.NewFilterRecord(stub.ID, detail, booked[stub.ID]))
	}
	return table, nil
}
