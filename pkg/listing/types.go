// Package listing holds the client-side view of marketplace listings: the
// normalized records built from wire data, the id-keyed lookup table, and
// the order/filter engine that derives display sequences from it.
package listing

import (
	"fmt"
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
)

// PropertyTypes indexes the backend's propertyType enum.
var PropertyTypes = []string{
	"House",
	"Apartment",
	"Loft",
	"Townhouse",
	"Villa",
	"Cabin",
}

// AUStates indexes the backend's address state enum.
var AUStates = []string{"NSW", "VIC", "QLD", "WA", "SA", "TAS", "ACT", "NT"}

// BedTypes indexes the backend's per-bedroom bed type enum.
var BedTypes = []string{"Single", "Double", "Queen", "King", "Sofa Bed"}

func PropertyTypeName(i int) string {
	if i < 0 || i >= len(PropertyTypes) {
		return fmt.Sprintf("Type %d", i)
	}
	return PropertyTypes[i]
}

func StateName(i int) string {
	if i < 0 || i >= len(AUStates) {
		return fmt.Sprint(i)
	}
	return AUStates[i]
}

// Summary is the flat per-listing record shown in hosting and feed views.
type Summary struct {
	ID           int
	Title        string
	Thumbnail    string
	PropertyType int
	Bedrooms     int
	Bathrooms    int
	Price        int
	Rating       float64
	Reviews      int
	Published    bool
}

// BathroomsLabel renders the bathroom count; 6 is the backend sentinel for
// "more than 5".
func (s Summary) BathroomsLabel() string {
	if s.Bathrooms == 6 {
		return "> 5"
	}
	return fmt.Sprint(s.Bathrooms)
}

// Window is one availability date range.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether the query range sits entirely inside the window.
func (w Window) Contains(start, end time.Time) bool {
	return !start.Before(w.Start) && !end.After(w.End)
}

// FilterRecord is a Summary annotated with the fields the filter engine
// needs. Records are rebuilt wholesale on every feed fetch.
type FilterRecord struct {
	Summary
	Address        string
	Windows        []Window
	BookedByViewer bool
}

// FormatAddress renders the wire address the way the listing feed shows it.
func FormatAddress(a client.Address) string {
	return fmt.Sprintf("%s, %s, %s, %s, %d", a.Street1, a.Street2, a.City, StateName(a.State), a.Postcode)
}
