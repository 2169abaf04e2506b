// Package booking splits a listing's bookings into the host triage buckets
// and computes the monthly earnings summary.
package booking

import (
	"fmt"
	"sort"
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
)

const layoutISO = "2006-01-02"

// Detail is the per-booking record the triage tables show.
type Detail struct {
	ID    int
	Start string
	End   string
	Owner string
	Price int
}

// Triage holds one listing's bookings: pending grouped by requester,
// accepted and declined as flat history.
type Triage struct {
	Pending  map[string][]Detail
	Accepted []Detail
	Declined []Detail
}

// Partition buckets the bookings that belong to the listing. Status
// transitions are one-way, so a record lands in exactly one bucket.
func Partition(bookings []client.Booking, listingID int) *Triage {
	t := &Triage{Pending: make(map[string][]Detail)}
	for _, b := range bookings {
		if !b.ForListing(listingID) {
			continue
		}
		d := Detail{
			ID:    b.ID,
			Start: b.DateRange.Start,
			End:   b.DateRange.End,
			Owner: b.Owner,
			Price: b.TotalPrice,
		}
		switch b.Status {
		case client.StatusPending:
			t.Pending[d.Owner] = append(t.Pending[d.Owner], d)
		case client.StatusAccepted:
			t.Accepted = append(t.Accepted, d)
		default:
			t.Declined = append(t.Declined, d)
		}
	}
	return t
}

// Requesters returns the pending group keys in a stable order.
func (t *Triage) Requesters() []string {
	out := make([]string, 0, len(t.Pending))
	for owner := range t.Pending {
		out = append(out, owner)
	}
	sort.Strings(out)
	return out
}

// Accept moves the booking out of its pending group into Accepted. The
// group is dropped when it empties. Missing records are an error, not a
// silent write.
func (t *Triage) Accept(id int, owner string) error {
	d, err := t.takePending(id, owner)
	if err != nil {
		return err
	}
	t.Accepted = append(t.Accepted, d)
	return nil
}

// Decline mirrors Accept into Declined.
func (t *Triage) Decline(id int, owner string) error {
	d, err := t.takePending(id, owner)
	if err != nil {
		return err
	}
	t.Declined = append(t.Declined, d)
	return nil
}

func (t *Triage) takePending(id int, owner string) (Detail, error) {
	group, ok := t.Pending[owner]
	if !ok {
		return Detail{}, fmt.Errorf("no pending bookings for %s", owner)
	}
	for i, d := range group {
		if d.ID == id {
			group = append(group[:i], group[i+1:]...)
			if len(group) == 0 {
				delete(t.Pending, owner)
			} else {
				t.Pending[owner] = group
			}
			return d, nil
		}
	}
	return Detail{}, fmt.Errorf("booking %d not pending for %s", id, owner)
}

// Earnings sums price and nights over accepted bookings whose start date
// falls in now's calendar month and year.
func (t *Triage) Earnings(now time.Time) (total, nights int) {
	for _, d := range t.Accepted {
		start, err1 := time.Parse(layoutISO, d.Start)
		end, err2 := time.Parse(layoutISO, d.End)
		if err1 != nil || err2 != nil {
			continue
		}
		if start.Year() == now.Year() && start.Month() == now.Month() {
			total += d.Price
			span := int(end.Sub(start).Hours() / 24)
			if span < 0 {
				span = -span
			}
			nights += span
		}
	}
	return total, nights
}
