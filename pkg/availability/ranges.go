// Package availability holds the date-range list a host fills in before
// publishing a listing. The list always keeps at least one entry; removal
// of the last range is a typed error instead of a silent no-op.
package availability

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
)

const layoutISO = "2006-01-02"

var (
	ErrLastRange = errors.New("at least one date range is required")

	// Validation messages are the ones the publish dialog has always shown.
	ErrIncomplete = errors.New("Please fill all the date")
	ErrDateOrder  = errors.New("Start date cannot be same or after end date")
)

// Range is one (start, end) pair; a zero time means the side is unset.
type Range struct {
	Start time.Time
	End   time.Time
}

// Ranges is the ordered, index-addressed range list. NewRanges starts with
// a single empty entry, matching the dialog's initial state.
type Ranges struct {
	list []Range
}

func NewRanges() *Ranges {
	return &Ranges{list: []Range{{}}}
}

func (r *Ranges) Len() int {
	return len(r.list)
}

// Add appends an empty range.
func (r *Ranges) Add() {
	r.list = append(r.list, Range{})
}

// Set replaces the range at index.
func (r *Ranges) Set(i int, rng Range) error {
	if i < 0 || i >= len(r.list) {
		return fmt.Errorf("no date range at index %d", i)
	}
	r.list[i] = rng
	return nil
}

// Remove deletes the range at index. Dropping the final remaining range is
// refused with ErrLastRange.
func (r *Ranges) Remove(i int) error {
	if i < 0 || i >= len(r.list) {
		return fmt.Errorf("no date range at index %d", i)
	}
	if len(r.list) == 1 {
		return ErrLastRange
	}
	r.list = append(r.list[:i], r.list[i+1:]...)
	return nil
}

// Validate checks the whole list before any network call: every range must
// have both sides set and start strictly before end. Any failure aborts the
// entire submission.
func (r *Ranges) Validate() error {
	for _, rng := range r.list {
		if rng.Start.IsZero() || rng.End.IsZero() {
			return ErrIncomplete
		}
		if !rng.Start.Before(rng.End) {
			return ErrDateOrder
		}
	}
	return nil
}

// Payload converts the validated list into the publish request body.
func (r *Ranges) Payload() []client.DateRange {
	out := make([]client.DateRange, 0, len(r.list))
	for _, rng := range r.list {
		out = append(out, client.DateRange{
			Start: rng.Start.Format(layoutISO),
			End:   rng.End.Format(layoutISO),
		})
	}
	return out
}

// Reset discards all edits and returns to a single empty range (the cancel
// path and the post-publish state).
func (r *Ranges) Reset() {
	r.list = []Range{{}}
}

// Parse reads a "start:end" flag value into a Range.
func Parse(s string) (Range, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return Range{}, fmt.Errorf("invalid range %q, want start:end", s)
	}
	from, err := time.Parse(layoutISO, parts[0])
	if err != nil {
		return Range{}, fmt.Errorf("invalid start date %q: %w", parts[0], err)
	}
	to, err := time.Parse(layoutISO, parts[1])
	if err != nil {
		return Range{}, fmt.Errorf("invalid end date %q: %w", parts[1], err)
	}
	return Range{Start: from, End: to}, nil
}
