// Package triage holds the host-side booking runners: the per-listing
// triage view and accept/decline decisions.
package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/booking"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/printers"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/session"
)

// Show renders the booking triage for one listing alongside the earnings
// summary for the current calendar month.
type Show struct {
	ListingID int

	Client  *client.Client
	Session *session.Store
}

func (n *Show) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	bookings, err := n.Client.Bookings(ctx)
	if err != nil {
		return fmt.Errorf("Booking Detail Load Error: %w", err)
	}

	detail, err := n.Client.Listing(ctx, n.ListingID)
	if err != nil {
		return fmt.Errorf("Listing Detail Load Error: %w", err)
	}

	t := booking.Partition(bookings, n.ListingID)
	now := time.Now()
	total, nights := t.Earnings(now)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title(detail.Title)
	pp.NewLine()
	pp.Triage(t)
	pp.NewLine()
	pp.Earnings(now.Year(), total, nights)
	return nil
}

// Decide accepts or declines one pending booking. The triage state is
// loaded first and moved only after the remote call succeeded; a missing
// pending record is an error before any call is made.
type Decide struct {
	ListingID int
	BookingID int
	Accept    bool

	Client  *client.Client
	Session *session.Store
}

func (n *Decide) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	bookings, err := n.Client.Bookings(ctx)
	if err != nil {
		return fmt.Errorf("Booking Detail Load Error: %w", err)
	}

	t := booking.Partition(bookings, n.ListingID)
	owner, ok := findPending(t, n.BookingID)
	if !ok {
		if n.Accept {
			return fmt.Errorf("Accept Error: booking %d is not pending", n.BookingID)
		}
		return fmt.Errorf("Reject Error: booking %d is not pending", n.BookingID)
	}

	pp := printers.PrettyPrint{}
	if n.Accept {
		if err := n.Client.AcceptBooking(ctx, n.BookingID); err != nil {
			return fmt.Errorf("Accept Error: %w", err)
		}
		if err := t.Accept(n.BookingID, owner); err != nil {
			return fmt.Errorf("Accept Error: %w", err)
		}
		pp.Success("Accept Booking Success")
	} else {
		if err := n.Client.DeclineBooking(ctx, n.BookingID); err != nil {
			return fmt.Errorf("Reject Error: %w", err)
		}
		if err := t.Decline(n.BookingID, owner); err != nil {
			return fmt.Errorf("Reject Error: %w", err)
		}
		pp.Success("Reject Booking Success")
	}

	now := time.Now()
	total, nights := t.Earnings(now)
	pp.NewLine()
	pp.Triage(t)
	pp.NewLine()
	pp.Earnings(now.Year(), total, nights)
	return nil
}

func findPending(t *booking.Triage, bookingID int) (string, bool) {
	for owner, group := range t.Pending {
		for _, d := range group {
			if d.ID == bookingID {
				return owner, true
			}
		}
	}
	return "", false
}
