package options

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/listing"
)

const layoutISO = "2006-01-02"

// FilterOptions captures the feed search and filter flags. At most one
// predicate applies; later checks win in the documented order.
type FilterOptions struct {
	Search   string
	Start    string
	End      string
	MinPrice int
	MaxPrice int
	MinBeds  int
	MaxBeds  int
	Rating   bool
	Reverse  bool

	Address bool

	cmd *cobra.Command
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	o.cmd = cmd
	cmd.Flags().StringVarP(&o.Search, "search", "s", "",
		"Match a word against title or address.")
	cmd.Flags().StringVar(&o.Start, "start", "",
		"Date-range filter start (YYYY-MM-DD).")
	cmd.Flags().StringVar(&o.End, "end", "",
		"Date-range filter end (YYYY-MM-DD).")
	cmd.Flags().IntVar(&o.MinPrice, "min-price", 0,
		"Minimum nightly price; unset means no lower bound.")
	cmd.Flags().IntVar(&o.MaxPrice, "max-price", 0,
		"Maximum nightly price; unset means no upper bound.")
	cmd.Flags().IntVar(&o.MinBeds, "min-beds", 0,
		"Minimum bedroom count; unset means no lower bound.")
	cmd.Flags().IntVar(&o.MaxBeds, "max-beds", 0,
		"Maximum bedroom count; unset means no upper bound.")
	cmd.Flags().BoolVar(&o.Rating, "rating", false,
		"Sort by rating, lowest to highest.")
	cmd.Flags().BoolVar(&o.Reverse, "reverse", false,
		"With --rating, sort highest to lowest.")
	cmd.Flags().BoolVar(&o.Address, "address", false,
		"Show the address column.")
}

// Filter builds the engine filter from whichever flags were set. An
// unchanged numeric flag stays an unbounded side, mirroring the unchecked
// checkboxes in the marketplace UI.
func (o *FilterOptions) Filter() listing.Filter {
	flags := o.cmd.Flags()
	switch {
	case o.Search != "":
		return listing.Filter{Kind: listing.Search, Text: o.Search}
	case o.Start != "" || o.End != "":
		f := listing.Filter{Kind: listing.Dates}
		if t, err := time.Parse(layoutISO, o.Start); err == nil {
			f.Start = t
		}
		if t, err := time.Parse(layoutISO, o.End); err == nil {
			f.End = t
		}
		return f
	case flags.Changed("min-price") || flags.Changed("max-price"):
		f := listing.Filter{Kind: listing.Price}
		if flags.Changed("min-price") {
			f.Min = &o.MinPrice
		}
		if flags.Changed("max-price") {
			f.Max = &o.MaxPrice
		}
		return f
	case flags.Changed("min-beds") || flags.Changed("max-beds"):
		f := listing.Filter{Kind: listing.Bedrooms}
		if flags.Changed("min-beds") {
			f.Min = &o.MinBeds
		}
		if flags.Changed("max-beds") {
			f.Max = &o.MaxBeds
		}
		return f
	case o.Rating || o.Reverse:
		return listing.Filter{Kind: listing.Rating, Descending: o.Reverse}
	default:
		return listing.Filter{}
	}
}
