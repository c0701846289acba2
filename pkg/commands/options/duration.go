package options

import (
	"github.com/spf13/cobra"

	"stillpoint.dev/still/pkg/timeutil"
)

// DurationOptions
type DurationOptions struct {
	ForString string
}

func AddDurationArgs(cmd *cobra.Command, o *DurationOptions) {
	cmd.Flags().StringVar(&o.ForString, "for", "",
		`Timer duration, example: --for=10m or --for=1h30m. A bare number means minutes.`)
}

// GetSeconds resolves the flag to seconds. Zero with no error means the flag
// was not set and the persisted setting should be used.
func (o *DurationOptions) GetSeconds() (int, error) {
	if o.ForString == "" {
		return 0, nil
	}
	return timeutil.ParseDuration(o.ForString)
}
