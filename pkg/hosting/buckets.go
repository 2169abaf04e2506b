// Package hosting reconciles a host's listings across the three display
// buckets: Current (created or edited this session), Published, and
// Unpublished. A listing id lives in exactly one bucket at a time; moves
// happen only after the matching remote call succeeded.
package hosting

import (
	"fmt"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
)

// ErrNotFound reports a listing id absent from the bucket an operation
// requires it in. The browser client used to write undefined through this
// case; here it fails loudly.
type ErrNotFound struct {
	ID     int
	Bucket string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("listing %d not in %s", e.ID, e.Bucket)
}

type Buckets struct {
	Current     []listing.Summary
	Published   []listing.Summary
	Unpublished []listing.Summary

	session map[int]bool
}

func NewBuckets(sessionIDs ...int) *Buckets {
	b := &Buckets{session: make(map[int]bool)}
	for _, id := range sessionIDs {
		b.session[id] = true
	}
	return b
}

// MarkCurrent pins an id to the Current bucket for the rest of the session.
// Creating a listing marks it; editing never unmarks it.
func (b *Buckets) MarkCurrent(id int) {
	b.session[id] = true
}

func (b *Buckets) IsCurrent(id int) bool {
	return b.session[id]
}

// SessionIDs returns the session-override set for persisting.
func (b *Buckets) SessionIDs() []int {
	out := make([]int, 0, len(b.session))
	for id := range b.session {
		out = append(out, id)
	}
	return out
}

// Classify appends a fetched record to the bucket that owns it: Current
// when session-flagged, otherwise by its published flag.
func (b *Buckets) Classify(s listing.Summary) {
	switch {
	case b.session[s.ID]:
		b.Current = append(b.Current, s)
	case s.Published:
		b.Published = append(b.Published, s)
	default:
		b.Unpublished = append(b.Unpublished, s)
	}
}

// Remove drops the id from whichever bucket holds it. Exactly one bucket is
// touched; an id held nowhere is an error.
func (b *Buckets) Remove(id int) error {
	for _, seq := range []*[]listing.Summary{&b.Current, &b.Published, &b.Unpublished} {
		if _, ok := take(seq, id); ok {
			return nil
		}
	}
	return &ErrNotFound{ID: id, Bucket: "any bucket"}
}

// Unpublish flips the record's published flag off. A session-flagged id
// stays in Current, promoted to the front; otherwise the record moves from
// Published to the front of Unpublished.
func (b *Buckets) Unpublish(id int) error {
	if b.session[id] {
		s, ok := take(&b.Current, id)
		if !ok {
			return &ErrNotFound{ID: id, Bucket: "current"}
		}
		s.Published = false
		b.Current = prepend(b.Current, s)
		return nil
	}
	s, ok := take(&b.Published, id)
	if !ok {
		return &ErrNotFound{ID: id, Bucket: "published"}
	}
	s.Published = false
	b.Unpublished = prepend(b.Unpublished, s)
	return nil
}

// Publish is the mirror of Unpublish. Availability validation happens
// before the remote call, never here.
func (b *Buckets) Publish(id int) error {
	if b.session[id] {
		s, ok := take(&b.Current, id)
		if !ok {
			return &ErrNotFound{ID: id, Bucket: "current"}
		}
		s.Published = true
		b.Current = prepend(b.Current, s)
		return nil
	}
	s, ok := take(&b.Unpublished, id)
	if !ok {
		return &ErrNotFound{ID: id, Bucket: "unpublished"}
	}
	s.Published = true
	b.Published = prepend(b.Published, s)
	return nil
}

// take removes and returns the summary with the given id, keeping the
// relative order of the rest.
func take(seq *[]listing.Summary, id int) (listing.Summary, bool) {
	for i, s := range *seq {
		if s.ID == id {
			*seq = append((*seq)[:i], (*seq)[i+1:]...)
			return s, true
		}
	}
	return listing.Summary{}, false
}

func prepend(seq []listing.Summary, s listing.Summary) []listing.Summary {
	return append([]listing.Summary{s}, seq...)
}
