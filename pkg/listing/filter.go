package listing

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// Kind names the predicate a Filter applies.
type Kind int

const (
	// Normal places previously booked listings first, then the rest by
	// case-insensitive title.
	Normal Kind = iota
	// Search matches a substring of title or address.
	Search
	// Dates keeps listings with an availability window containing the
	// query range.
	Dates
	// Price keeps listings whose nightly price is inside the bounds.
	Price
	// Bedrooms keeps listings whose bedroom count is inside the bounds.
	Bedrooms
	// Rating sorts all listings by average rating.
	Rating
)

// Filter selects and orders feed records. Exactly one predicate applies at
// a time; the zero value is the Normal order.
type Filter struct {
	Kind Kind

	Text string

	Start time.Time
	End   time.Time

	// nil bounds are unbounded.
	Min *int
	Max *int

	// Descending applies to Rating only.
	Descending bool
}

// Error strings match the messages the marketplace UI has always shown.
var (
	ErrDatesRequired = errors.New("Please filled the form correctly")
	ErrDateOrder     = errors.New("Start date must be before end date")
)

// Order derives the display sequence for the filter. The result holds no
// duplicates, every id exists in the table, and identical inputs produce
// identical output.
func (t *Table) Order(f Filter) ([]int, error) {
	switch f.Kind {
	case Search:
		return t.searchOrder(f.Text), nil
	case Dates:
		return t.datesOrder(f.Start, f.End)
	case Price:
		return t.boundsOrder(f.Min, f.Max, func(r *FilterRecord) int { return r.Price }), nil
	case Bedrooms:
		return t.boundsOrder(f.Min, f.Max, func(r *FilterRecord) int { return r.Bedrooms }), nil
	case Rating:
		return t.ratingOrder(f.Descending), nil
	default:
		return t.normalOrder(), nil
	}
}

func (t *Table) normalOrder() []int {
	booked := make([]int, 0, len(t.ids))
	rest := make([]*FilterRecord, 0, len(t.ids))
	for _, r := range t.all() {
		if r.BookedByViewer {
			booked = append(booked, r.ID)
		} else {
			rest = append(rest, r)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return strings.ToLower(rest[i].Title) < strings.ToLower(rest[j].Title)
	})
	for _, r := range rest {
		booked = append(booked, r.ID)
	}
	return booked
}

func (t *Table) searchOrder(text string) []int {
	needle := strings.ToLower(text)
	order := make([]int, 0, len(t.ids))
	for _, r := range t.all() {
		if strings.Contains(strings.ToLower(r.Title), needle) ||
			strings.Contains(strings.ToLower(r.Address), needle) {
			order = append(order, r.ID)
		}
	}
	return order
}

func (t *Table) datesOrder(start, end time.Time) ([]int, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrDatesRequired
	}
	if !start.Before(end) {
		return nil, ErrDateOrder
	}
	order := make([]int, 0, len(t.ids))
	for _, r := range t.all() {
		for _, w := range r.Windows {
			if w.Contains(start, end) {
				order = append(order, r.ID)
				break
			}
		}
	}
	return order, nil
}

func (t *Table) boundsOrder(min, max *int, value func(*FilterRecord) int) []int {
	order := make([]int, 0, len(t.ids))
	for _, r := range t.all() {
		v := value(r)
		if min != nil && v < *min {
			continue
		}
		if max != nil && v > *max {
			continue
		}
		order = append(order, r.ID)
	}
	return order
}

func (t *Table) ratingOrder(descending bool) []int {
	all := t.all()
	sort.SliceStable(all, func(i, j int) bool {
		if descending {
			return all[i].Rating > all[j].Rating
		}
		return all[i].Rating < all[j].Rating
	})
	order := make([]int, len(all))
	for i, r := range all {
		order[i] = r.ID
	}
	return order
}
