package format

import (
	"fmt"
	"time"
)

// FormatExecutionDuration renders the wall-clock time of a run. Unpaced runs
// finish in micro or nanoseconds while paced runs last seconds to minutes, so
// the unit follows the magnitude and long durations are rounded to the
// millisecond.
func FormatExecutionDuration(d time.Duration) string {
	switch {
	case d < time.Microsecond:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	case d < time.Millisecond:
		return fmt.Sprintf("%dµs", d.Microseconds())
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	default:
		return d.Round(time.Millisecond).String()
	}
}
