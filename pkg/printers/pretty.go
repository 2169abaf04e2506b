// Package printers renders listing and booking views on the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/booking"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
)

type PrettyPrint struct {
	ShowAddress bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Success is the snackbar equivalent: a one-line green confirmation.
func (pp *PrettyPrint) Success(message string) {
	g := color.New(color.FgGreen)
	_, _ = g.Println(message)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

// Feed renders the ordered public feed.
func (pp *PrettyPrint) Feed(t *listing.Table, order []int) {
	if len(order) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	header := []interface{}{bold("ID"), bold("Title"), bold("Type"), bold("Beds"), bold("Baths"), bold("Price"), bold("Rating")}
	if pp.ShowAddress {
		header = append(header, bold("Address"))
	}
	tbl.AddRow(header...)

	for _, id := range order {
		r, ok := t.Get(id)
		if !ok {
			continue
		}
		row := []interface{}{
			r.ID,
			r.Title,
			listing.PropertyTypeName(r.PropertyType),
			r.Bedrooms,
			r.BathroomsLabel(),
			fmt.Sprintf("$%d", r.Price),
			fmt.Sprintf("%.1f (%d)", r.Rating, r.Reviews),
		}
		if pp.ShowAddress {
			row = append(row, r.Address)
		}
		tbl.AddRow(row...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Hosting renders one hosting bucket as a titled table.
func (pp *PrettyPrint) Hosting(title string, summaries []listing.Summary) {
	pp.Title(title)
	if len(summaries) == 0 {
		pp.none()
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Title"), bold("Type"), bold("Beds"), bold("Baths"), bold("Price"), bold("Rating"), bold("Published"))
	for _, s := range summaries {
		tbl.AddRow(
			s.ID,
			s.Title,
			listing.PropertyTypeName(s.PropertyType),
			s.Bedrooms,
			s.BathroomsLabel(),
			fmt.Sprintf("$%d", s.Price),
			fmt.Sprintf("%.1f (%d)", s.Rating, s.Reviews),
			s.Published,
		)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
	pp.NewLine()
}

// Triage renders the pending groups and the accepted/declined history.
func (pp *PrettyPrint) Triage(t *booking.Triage) {
	pp.Title("Confirm Request")
	if len(t.Pending) == 0 {
		pp.none()
	}
	for _, owner := range t.Requesters() {
		_, _ = color.New(color.Bold).Println(owner)
		tbl := uitable.New()
		tbl.Separator = "  "
		tbl.AddRow(bold("ID"), bold("Start Date"), bold("End Date"))
		for _, d := range t.Pending[owner] {
			tbl.AddRow(d.ID, d.Start, d.End)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}
	pp.NewLine()

	pp.Title("History Booking")
	if len(t.Accepted)+len(t.Declined) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("User"), bold("Start Date"), bold("End Date"), bold("Status"), bold("Price"))
	for _, d := range t.Accepted {
		tbl.AddRow(d.Owner, d.Start, d.End, "Accept", fmt.Sprintf("$%d", d.Price))
	}
	for _, d := range t.Declined {
		tbl.AddRow(d.Owner, d.Start, d.End, "Reject", "")
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Earnings renders the month-to-date profit box.
func (pp *PrettyPrint) Earnings(year int, total, nights int) {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(fmt.Sprintf("Booking Duration in %d", year), nights)
	tbl.AddRow(fmt.Sprintf("Profit in %d", year), "$"+FormatNumber(total))
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Trips renders the viewer's own bookings for a listing.
func (pp *PrettyPrint) Trips(trips []booking.Trip) {
	if len(trips) == 0 {
		pp.none()
		return
	}
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), bold("Start Date"), bold("End Date"), bold("Status"))
	for _, t := range trips {
		tbl.AddRow(t.ID, t.Start, t.End, t.Status)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Detail renders one listing's full record the way its page shows it.
func (pp *PrettyPrint) Detail(id int, d *client.ListingDetail) {
	pp.Title(d.Title)

	s := listing.NewSummary(id, d)
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold("ID"), id)
	tbl.AddRow(bold("Owner"), d.Owner)
	tbl.AddRow(bold("Address"), listing.FormatAddress(d.Address))
	tbl.AddRow(bold("Type"), listing.PropertyTypeName(d.Metadata.PropertyType))
	tbl.AddRow(bold("Beds"), s.Bedrooms)
	tbl.AddRow(bold("Baths"), s.BathroomsLabel())
	tbl.AddRow(bold("Price"), fmt.Sprintf("$%d / night", d.Price))
	tbl.AddRow(bold("Rating"), fmt.Sprintf("%.1f (%d)", s.Rating, s.Reviews))
	if len(d.Metadata.Amenities) > 0 {
		tbl.AddRow(bold("Amenities"), strings.Join(d.Metadata.Amenities, ", "))
	}
	if len(d.Metadata.Pictures) > 0 {
		tbl.AddRow(bold("Pictures"), len(d.Metadata.Pictures))
	}
	_, _ = fmt.Fprintln(color.Output, tbl)

	pp.NewLine()
	pp.Title("Availability")
	if len(d.Availability) == 0 {
		pp.none()
	} else {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, w := range d.Availability {
			tbl.AddRow(w.Start, "to", w.End)
		}
		_, _ = fmt.Fprintln(color.Output, tbl)
	}

	pp.NewLine()
	pp.Title("Reviews")
	if len(d.Reviews) == 0 {
		pp.none()
		return
	}
	tbl = uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, r := range d.Reviews {
		tbl.AddRow(bold(r.Owner), r.PostedOn, fmt.Sprintf("%.0f/5", r.Rating), r.Comments)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// FormatNumber groups thousands: 100000 => 100,000.
func FormatNumber(n int) string {
	s := fmt.Sprint(n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}

func bold(s string) string {
	return color.New(color.Bold).Sprint(s)
}
