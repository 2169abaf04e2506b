package listing

import (
	"time"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/client"
)

const layoutISO = "2006-01-02"

// NewSummary flattens a wire detail record: bedrooms are summed across the
// per-room entries and the rating is the review average (0 with no reviews).
func NewSummary(id int, d *client.ListingDetail) Summary {
	beds := 0
	for _, room := range d.Metadata.Bedrooms {
		if len(room) > 0 {
			beds += room[0]
		}
	}

	rating := 0.0
	if len(d.Reviews) > 0 {
		total := 0.0
		for _, r := range d.Reviews {
			total += r.Rating
		}
		rating = total / float64(len(d.Reviews))
	}

	return Summary{
		ID:           id,
		Title:        d.Title,
		Thumbnail:    d.Thumbnail,
		PropertyType: d.Metadata.PropertyType,
		Bedrooms:     beds,
		Bathrooms:    d.Metadata.Bathrooms,
		Price:        d.Price,
		Rating:       rating,
		Reviews:      len(d.Reviews),
		Published:    d.Published,
	}
}

// NewFilterRecord builds the feed record for one listing. Availability
// windows that fail to parse are dropped rather than failing the whole
// record; the backend stores them as ISO date strings.
func NewFilterRecord(id int, d *client.ListingDetail, bookedByViewer bool) FilterRecord {
	windows := make([]Window, 0, len(d.Availability))
	for _, a := range d.Availability {
		start, err1 := time.Parse(layoutISO, a.Start)
		end, err2 := time.Parse(layoutISO, a.End)
		if err1 != nil || err2 != nil {
			continue
		}
		windows = append(windows, Window{Start: start, End: end})
	}

	return FilterRecord{
		Summary:        NewSummary(id, d),
		Address:        FormatAddress(d.Address),
		Windows:        windows,
		BookedByViewer: bookedByViewer,
	}
}
