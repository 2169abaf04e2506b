package options

import (
	"github.com/spf13/cobra"

	"github.com/EnmmmmOvO/airbnb-cli/pkg/availability"
)

// DateRangeOptions captures repeated start:end range flags (publishing)
// or a single range (booking).
type DateRangeOptions struct {
	Ranges []string
}

func AddRangeArgs(cmd *cobra.Command, o *DateRangeOptions) {
	cmd.Flags().StringArrayVarP(&o.Ranges, "range", "r", nil,
		"Availability window as start:end (YYYY-MM-DD), repeatable.")
}

// Availability fills a range list from the flags. No flags keep the
// list at its initial single empty entry, which Validate then rejects.
func (o *DateRangeOptions) Availability() (*availability.Ranges, error) {
	ranges := availability.NewRanges()
	for i, spec := range o.Ranges {
		rng, err := availability.Parse(spec)
		if err != nil {
			return nil, err
		}
		if i > 0 {
			ranges.Add()
		}
		if err := ranges.Set(i, rng); err != nil {
			return nil, err
		}
	}
	return ranges, nil
}
