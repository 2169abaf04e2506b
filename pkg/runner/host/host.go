// Package host holds the hosting-management runners: the bucketed listing
// view plus create, edit, delete, publish, and unpublish.
package host

import (
	"context"
	"fmt"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/availability"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/hosting"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/printers"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/session"
)

// LoadBuckets rebuilds the three hosting buckets for the signed-in owner:
// every owned listing is fetched in feed order and classified by the
// session-override set, then by its published flag.
func LoadBuckets(ctx context.Context, c *client.Client, s *session.Store) (*hosting.Buckets, error) {
	email := s.Email()
	if email == "" || c.Token == "" {
		return nil, session.ErrNotLoggedIn
	}

	stubs, err := c.Listings(ctx)
	if err != nil {
		return nil, fmt.Errorf("Fetch Error: %w", err)
	}

	buckets := hosting.NewBuckets(s.CurrentIDs()...)
	for _, stub := range stubs {
		if stub.Owner != email {
			continue
		}
		detail, err := c.Listing(ctx, stub.ID)
		if err != nil {
			return nil, fmt.Errorf("Fetch Error: %w", err)
		}
		buckets.Classify(listing.NewSummary(stub.ID, detail))
	}
	return buckets, nil
}

func printBuckets(b *hosting.Buckets) {
	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Hosting("Current", b.Current)
	pp.Hosting("Unpublished", b.Unpublished)
	pp.Hosting("Published", b.Published)
}

// List renders the My Hosting view.
type List struct {
	Client  *client.Client
	Session *session.Store
}

func (n *List) Do(ctx context.Context) error {
	buckets, err := LoadBuckets(ctx, n.Client, n.Session)
	if err != nil {
		return err
	}
	printBuckets(buckets)
	return nil
}

// Create submits a new listing. The created id joins the session-override
// set so the listing shows under Current until the session ends.
type Create struct {
	Payload client.ListingPayload

	Client  *client.Client
	Session *session.Store
}

func (n *Create) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	id, err := n.Client.CreateListing(ctx, n.Payload)
	if err != nil {
		return fmt.Errorf("Create Hosting Error: %w", err)
	}

	if err := markCurrent(n.Session, id); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Create Your Hosting Success")
	fmt.Printf("listing id: %d\n", id)
	return nil
}

// Edit updates an existing listing; an edited id is marked session-current
// and is never unmarked.
type Edit struct {
	ID      int
	Payload client.ListingPayload

	Client  *client.Client
	Session *session.Store
}

func (n *Edit) Do(ctx context.Context) error {
	if n.Client.Token == "" {
		return session.ErrNotLoggedIn
	}
	if err := n.Client.UpdateListing(ctx, n.ID, n.Payload); err != nil {
		return fmt.Errorf("Edit Hosting Error: %w", err)
	}

	if err := markCurrent(n.Session, n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	pp.Success("Edit Detail Success")
	return nil
}

func markCurrent(s *session.Store, id int) error {
	ids := s.CurrentIDs()
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.SetCurrentIDs(append(ids, id))
}

// Delete removes a listing. The buckets are loaded first and touched only
// after the remote delete succeeded, so a failed call leaves them intact.
type Delete struct {
	ID int

	Client  *client.Client
	Session *session.Store
}

func (n *Delete) Do(ctx context.Context) error {
	buckets, err := LoadBuckets(ctx, n.Client, n.Session)
	if err != nil {
		return err
	}

	if err := n.Client.DeleteListing(ctx, n.ID); err != nil {
		return fmt.Errorf("Delete Hosting Error: %w", err)
	}
	if err := buckets.Remove(n.ID); err != nil {
		return fmt.Errorf("Delete Hosting Error: %w", err)
	}

	pp := printers.PrettyPrint{}
	pp.Success("Delete Success")
	printBuckets(buckets)
	return nil
}

// Publish validates the availability ranges, then publishes and moves the
// listing into its destination bucket. Validation failures never reach the
// network.
type Publish struct {
	ID     int
	Ranges *availability.Ranges

	Client  *client.Client
	Session *session.Store
}

func (n *Publish) Do(ctx context.Context) error {
	if n.Ranges == nil || n.Ranges.Len() == 0 {
		return fmt.Errorf("Publish Error: %w", availability.ErrIncomplete)
	}
	if err := n.Ranges.Validate(); err != nil {
		return fmt.Errorf("Publish Error: %w", err)
	}

	buckets, err := LoadBuckets(ctx, n.Client, n.Session)
	if err != nil {
		return err
	}

	if err := n.Client.PublishListing(ctx, n.ID, n.Ranges.Payload()); err != nil {
		return fmt.Errorf("Publish Error: %w", err)
	}
	if err := buckets.Publish(n.ID); err != nil {
		return fmt.Errorf("Publish Error: %w", err)
	}
	n.Ranges.Reset()

	pp := printers.PrettyPrint{}
	pp.Success("Publish Success")
	printBuckets(buckets)
	return nil
}

// Unpublish is the mirror of Publish with no payload.
type Unpublish struct {
	ID int

	Client  *client.Client
	Session *session.Store
}

func (n *Unpublish) Do(ctx context.Context) error {
	buckets, err := LoadBuckets(ctx, n.Client, n.Session)
	if err != nil {
		return err
	}

	if err := n.Client.UnpublishListing(ctx, n.ID); err != nil {
		return fmt.Errorf("Unpublish Hosting Error: %w", err)
	}
	if err := buckets.Unpublish(n.ID); err != nil {
		return fmt.Errorf("Unpublish Hosting Error: %w", err)
	}

	pp := printers.PrettyPrint{}
	pp.Success("Unpublish Success")
	printBuckets(buckets)
	return nil
}
