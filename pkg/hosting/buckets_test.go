package hosting

import (
	"errors"
	"testing"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
)

func summary(id int, published bool) listing.Summary {
	return listing.Summary{ID: id, Title: "Listing", Published: published}
}

func ids(seq []listing.Summary) []int {
	out := make([]int, len(seq))
	for i, s := range seq {
		out[i] = s.ID
	}
	return out
}

func equal(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestClassify(t *testing.T) {
	b := NewBuckets(3)
	b.Classify(summary(1, true))
	b.Classify(summary(2, false))
	b.Classify(summary(3, true)) // session-flagged wins over published

	if !equal(ids(b.Current), []int{3}) {
		t.Errorf("Current = %v, want [3]", ids(b.Current))
	}
	if !equal(ids(b.Published), []int{1}) {
		t.Errorf("Published = %v, want [1]", ids(b.Published))
	}
	if !equal(ids(b.Unpublished), []int{2}) {
		t.Errorf("Unpublished = %v, want [2]", ids(b.Unpublished))
	}
}

func TestRemoveTouchesExactlyOneBucket(t *testing.T) {
	b := NewBuckets(1)
	b.Classify(summary(1, true))
	b.Classify(summary(2, true))
	b.Classify(summary(3, false))

	if err := b.Remove(1); err != nil {
		t.Fatalf("Remove(1) = %v", err)
	}
	if len(b.Current) != 0 {
		t.Errorf("Current not emptied: %v", ids(b.Current))
	}
	if !equal(ids(b.Published), []int{2}) || !equal(ids(b.Unpublished), []int{3}) {
		t.Errorf("other buckets touched: published %v unpublished %v", ids(b.Published), ids(b.Unpublished))
	}

	if err := b.Remove(2); err != nil {
		t.Fatalf("Remove(2) = %v", err)
	}
	if len(b.Published) != 0 || !equal(ids(b.Unpublished), []int{3}) {
		t.Errorf("delete of published id leaked: published %v unpublished %v", ids(b.Published), ids(b.Unpublished))
	}
}

func TestRemoveMissingFailsLoudly(t *testing.T) {
	b := NewBuckets()
	var notFound *ErrNotFound
	if err := b.Remove(99); !errors.As(err, &notFound) {
		t.Fatalf("Remove(99) = %v, want *ErrNotFound", err)
	}
}

func TestUnpublishMovesToFrontOfUnpublished(t *testing.T) {
	b := NewBuckets()
	b.Classify(summary(1, false))
	b.Classify(summary(2, true))
	b.Classify(summary(3, true))

	if err := b.Unpublish(3); err != nil {
		t.Fatalf("Unpublish(3) = %v", err)
	}
	if !equal(ids(b.Unpublished), []int{3, 1}) {
		t.Errorf("Unpublished = %v, want [3 1] (LIFO)", ids(b.Unpublished))
	}
	if !equal(ids(b.Published), []int{2}) {
		t.Errorf("Published = %v, want [2]", ids(b.Published))
	}
	if b.Unpublished[0].Published {
		t.Errorf("moved record still flagged published")
	}
}

func TestUnpublishSessionOverrideStaysCurrent(t *testing.T) {
	b := NewBuckets(2)
	b.Classify(summary(1, true))
	b.Classify(summary(2, true))

	if err := b.Unpublish(2); err != nil {
		t.Fatalf("Unpublish(2) = %v", err)
	}
	if !equal(ids(b.Current), []int{2}) {
		t.Errorf("Current = %v, want [2]", ids(b.Current))
	}
	if len(b.Unpublished) != 0 {
		t.Errorf("Unpublished = %v, want empty", ids(b.Unpublished))
	}
	if b.Current[0].Published {
		t.Errorf("record still flagged published")
	}
}

func TestPublishMirrorsUnpublish(t *testing.T) {
	b := NewBuckets()
	b.Classify(summary(1, false))
	b.Classify(summary(2, false))
	b.Classify(summary(3, true))

	if err := b.Publish(2); err != nil {
		t.Fatalf("Publish(2) = %v", err)
	}
	if !equal(ids(b.Published), []int{2, 3}) {
		t.Errorf("Published = %v, want [2 3] (LIFO)", ids(b.Published))
	}
	if !equal(ids(b.Unpublished), []int{1}) {
		t.Errorf("Unpublished = %v, want [1]", ids(b.Unpublished))
	}
	if !b.Published[0].Published {
		t.Errorf("moved record not flagged published")
	}
}

func TestPublishSessionOverridePromotesWithinCurrent(t *testing.T) {
	b := NewBuckets(1, 2)
	b.Classify(summary(1, false))
	b.Classify(summary(2, false))

	if err := b.Publish(2); err != nil {
		t.Fatalf("Publish(2) = %v", err)
	}
	if !equal(ids(b.Current), []int{2, 1}) {
		t.Errorf("Current = %v, want [2 1]", ids(b.Current))
	}
	if len(b.Published) != 0 || len(b.Unpublished) != 0 {
		t.Errorf("session publish leaked into published/unpublished")
	}
}

func TestPublishMissingFromUnpublished(t *testing.T) {
	b := NewBuckets()
	b.Classify(summary(1, true))

	var notFound *ErrNotFound
	if err := b.Publish(1); !errors.As(err, &notFound) {
		t.Fatalf("Publish of already-published id = %v, want *ErrNotFound", err)
	}
	// State untouched on failure.
	if !equal(ids(b.Published), []int{1}) {
		t.Errorf("Published = %v, want [1]", ids(b.Published))
	}
}

func TestMarkCurrent(t *testing.T) {
	b := NewBuckets()
	b.MarkCurrent(5)
	if !b.IsCurrent(5) {
		t.Fatalf("IsCurrent(5) = false after MarkCurrent")
	}
	b.Classify(summary(5, true))
	if !equal(ids(b.Current), []int{5}) {
		t.Fatalf("Current = %v, want [5]", ids(b.Current))
	}
}
