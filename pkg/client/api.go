package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Wire types. Field shapes are the fixed integration contract of the
// backend and must not change independently of it.

type Address struct {
	Street1  string `json:"street1"`
	Street2  string `json:"street2"`
	City     string `json:"city"`
	State    int    `json:"state"`
	Postcode int    `json:"postcode"`
}

type Metadata struct {
	PropertyType int      `json:"propertyType"`
	Bathrooms    int      `json:"nob"`
	Bedrooms     [][]int  `json:"bedrooms"`
	Amenities    []string `json:"amenities"`
	Pictures     []string `json:"picture"`
}

type Review struct {
	Owner    string  `json:"owner"`
	PostedOn string  `json:"postedOn"`
	Rating   float64 `json:"rating"`
	Comments string  `json:"comments"`
}

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ListingStub is the shallow record in the public feed.
type ListingStub struct {
	ID    int    `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

// ListingDetail is the full record behind GET /listings/:id.
type ListingDetail struct {
	Title        string      `json:"title"`
	Owner        string      `json:"owner"`
	Address      Address     `json:"address"`
	Price        int         `json:"price"`
	Thumbnail    string      `json:"thumbnail"`
	Metadata     Metadata    `json:"metadata"`
	Reviews      []Review    `json:"reviews"`
	Availability []DateRange `json:"availability"`
	Published    bool        `json:"published"`
	PostedOn     string      `json:"postedOn,omitempty"`
}

// ListingPayload is the create/edit request body.
type ListingPayload struct {
	Title     string   `json:"title"`
	Address   Address  `json:"address"`
	Price     int      `json:"price"`
	Thumbnail string   `json:"thumbnail"`
	Metadata  Metadata `json:"metadata"`
}

type Booking struct {
	ID         int         `json:"id"`
	Owner      string      `json:"owner"`
	DateRange  DateRange   `json:"dateRange"`
	TotalPrice int         `json:"totalPrice"`
	ListingID  json.Number `json:"listingId"`
	Status     string      `json:"status"`
}

// ForListing reports whether the booking belongs to the listing. The
// backend serializes listingId inconsistently (string or number), hence
// the json.Number comparison.
func (b Booking) ForListing(id int) bool {
	return b.ListingID.String() == fmt.Sprint(id)
}

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusDeclined = "declined"
)

// Auth

func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/user/auth/login", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Register(ctx context.Context, email, password, name string) (string, error) {
	body := map[string]string{"email": email, "password": password, "name": name}
	var out struct {
		Token string `json:"token"`
	}
	if err := c.do(ctx, http.MethodPost, "/user/auth/register", body, &out); err != nil {
		return "", err
	}
	return out.Token, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/user/auth/logout", nil, nil)
}

// Listings

func (c *Client) Listings(ctx context.Context) ([]ListingStub, error) {
	var out struct {
		Listings []ListingStub `json:"listings"`
	}
	if err := c.do(ctx, http.MethodGet, "/listings", nil, &out); err != nil {
		return nil, err
	}
	return out.Listings, nil
}

func (c *Client) Listing(ctx context.Context, id int) (*ListingDetail, error) {
	var out struct {
		Listing *ListingDetail `json:"listing"`
	}
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/listings/%d", id), nil, &out); err != nil {
		return nil, err
	}
	if out.Listing == nil {
		return nil, &APIError{Status: http.StatusNotFound, Message: "listing not found"}
	}
	return out.Listing, nil
}

func (c *Client) CreateListing(ctx context.Context, p ListingPayload) (int, error) {
	var out struct {
		ListingID json.Number `json:"listingId"`
	}
	if err := c.do(ctx, http.MethodPost, "/listings/new", p, &out); err != nil {
		return 0, err
	}
	id, err := out.ListingID.Int64()
	if err != nil {
		return 0, fmt.Errorf("unexpected listing id %q: %w", out.ListingID, err)
	}
	return int(id), nil
}

func (c *Client) UpdateListing(ctx context.Context, id int, p ListingPayload) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/listings/%d", id), p, nil)
}

func (c *Client) DeleteListing(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/listings/%d", id), nil, nil)
}

func (c *Client) PublishListing(ctx context.Context, id int, availability []DateRange) error {
	body := map[string][]DateRange{"availability": availability}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/listings/publish/%d", id), body, nil)
}

func (c *Client) UnpublishListing(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/listings/unpublish/%d", id), nil, nil)
}

// Bookings

func (c *Client) Bookings(ctx context.Context) ([]Booking, error) {
	var out struct {
		Bookings []Booking `json:"bookings"`
	}
	if err := c.do(ctx, http.MethodGet, "/bookings", nil, &out); err != nil {
		return nil, err
	}
	return out.Bookings, nil
}

func (c *Client) NewBooking(ctx context.Context, listingID int, dr DateRange, totalPrice int) (int, error) {
	body := map[string]interface{}{"dateRange": dr, "totalPrice": totalPrice}
	var out struct {
		BookingID json.Number `json:"bookingId"`
	}
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/bookings/new/%d", listingID), body, &out); err != nil {
		return 0, err
	}
	id, err := out.BookingID.Int64()
	if err != nil {
		return 0, fmt.Errorf("unexpected booking id %q: %w", out.BookingID, err)
	}
	return int(id), nil
}

func (c *Client) DeleteBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/bookings/%d", id), nil, nil)
}

func (c *Client) AcceptBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/accept/%d", id), nil, nil)
}

func (c *Client) DeclineBooking(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/bookings/decline/%d", id), nil, nil)
}

// Reviews

func (c *Client) SubmitReview(ctx context.Context, listingID, bookingID int, r Review) error {
	body := map[string]Review{"review": r}
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/listings/%d/review/%d", listingID, bookingID), body, nil)
}
