package booking

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
)

func wireBooking(id int, listingID, owner, status, start, end string, price int) client.Booking {
	return client.Booking{
		ID:         id,
		Owner:      owner,
		DateRange:  client.DateRange{Start: start, End: end},
		TotalPrice: price,
		ListingID:  json.Number(listingID),
		Status:     status,
	}
}

func fixture() []client.Booking {
	return []client.Booking{
		wireBooking(1, "10", "alice@example.com", client.StatusPending, "2023-12-01", "2023-12-05", 400),
		wireBooking(2, "10", "alice@example.com", client.StatusPending, "2024-01-01", "2024-01-03", 200),
		wireBooking(3, "10", "bob@example.com", client.StatusPending, "2023-12-10", "2023-12-12", 150),
		wireBooking(4, "10", "carol@example.com", client.StatusAccepted, "2023-12-20", "2023-12-24", 800),
		wireBooking(5, "10", "dave@example.com", client.StatusDeclined, "2023-11-01", "2023-11-02", 90),
		wireBooking(6, "99", "alice@example.com", client.StatusPending, "2023-12-01", "2023-12-02", 50),
	}
}

func TestPartition(t *testing.T) {
	tr := Partition(fixture(), 10)

	if got := len(tr.Pending); got != 2 {
		t.Fatalf("pending groups = %d, want 2", got)
	}
	if got := len(tr.Pending["alice@example.com"]); got != 2 {
		t.Errorf("alice pending = %d, want 2", got)
	}
	if got := len(tr.Accepted); got != 1 {
		t.Errorf("accepted = %d, want 1", got)
	}
	if got := len(tr.Declined); got != 1 {
		t.Errorf("declined = %d, want 1", got)
	}

	// The booking against listing 99 must not leak in.
	for _, group := range tr.Pending {
		for _, d := range group {
			if d.ID == 6 {
				t.Errorf("booking 6 belongs to another listing")
			}
		}
	}
}

func TestRequestersSorted(t *testing.T) {
	tr := Partition(fixture(), 10)
	got := tr.Requesters()
	want := []string{"alice@example.com", "bob@example.com"}
	if len(got) != len(want) {
		t.Fatalf("Requesters() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Requesters() = %v, want %v", got, want)
		}
	}
}

func TestAcceptMovesOutOfPending(t *testing.T) {
	tr := Partition(fixture(), 10)

	if err := tr.Accept(1, "alice@example.com"); err != nil {
		t.Fatalf("Accept = %v", err)
	}
	if got := len(tr.Pending["alice@example.com"]); got != 1 {
		t.Errorf("alice pending = %d, want 1", got)
	}
	if got := len(tr.Accepted); got != 2 {
		t.Errorf("accepted = %d, want 2", got)
	}
}

func TestDeclineDropsEmptiedGroup(t *testing.T) {
	tr := Partition(fixture(), 10)

	if err := tr.Decline(3, "bob@example.com"); err != nil {
		t.Fatalf("Decline = %v", err)
	}
	if _, ok := tr.Pending["bob@example.com"]; ok {
		t.Errorf("emptied pending group not dropped")
	}
	if got := len(tr.Declined); got != 2 {
		t.Errorf("declined = %d, want 2", got)
	}
}

func TestAcceptMissingBooking(t *testing.T) {
	tr := Partition(fixture(), 10)

	if err := tr.Accept(99, "alice@example.com"); err == nil {
		t.Fatalf("Accept of unknown booking = nil, want error")
	}
	if err := tr.Accept(1, "nobody@example.com"); err == nil {
		t.Fatalf("Accept with unknown owner = nil, want error")
	}
	// Failed moves leave the buckets untouched.
	if got := len(tr.Pending["alice@example.com"]); got != 2 {
		t.Errorf("alice pending = %d, want 2", got)
	}
	if got := len(tr.Accepted); got != 1 {
		t.Errorf("accepted = %d, want 1", got)
	}
}

func TestEarningsCurrentMonthOnly(t *testing.T) {
	tr := Partition(fixture(), 10)
	// Accept alice's January booking as well; only December ones count at
	// a December now.
	if err := tr.Accept(2, "alice@example.com"); err != nil {
		t.Fatalf("Accept = %v", err)
	}

	now := time.Date(2023, time.December, 15, 12, 0, 0, 0, time.UTC)
	total, nights := tr.Earnings(now)
	if total != 800 {
		t.Errorf("total = %d, want 800", total)
	}
	if nights != 4 {
		t.Errorf("nights = %d, want 4", nights)
	}

	january := time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
	total, nights = tr.Earnings(january)
	if total != 200 || nights != 2 {
		t.Errorf("january earnings = (%d, %d), want (200, 2)", total, nights)
	}
}

func TestTripsFor(t *testing.T) {
	trips := TripsFor(fixture(), 10, "alice@example.com")
	if len(trips) != 2 {
		t.Fatalf("trips = %d, want 2", len(trips))
	}
	for _, trip := range trips {
		if trip.Status != client.StatusPending {
			t.Errorf("unexpected status %q", trip.Status)
		}
	}

	if _, ok := ReviewPermission(trips); ok {
		t.Errorf("pending-only history should not grant review permission")
	}

	carol := TripsFor(fixture(), 10, "carol@example.com")
	id, ok := ReviewPermission(carol)
	if !ok || id != 4 {
		t.Errorf("ReviewPermission = (%d, %v), want (4, true)", id, ok)
	}
}

func TestNights(t *testing.T) {
	start := time.Date(2023, time.December, 5, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, time.December, 15, 0, 0, 0, 0, time.UTC)
	if got := Nights(start, end); got != 10 {
		t.Fatalf("Nights = %d, want 10", got)
	}
}
