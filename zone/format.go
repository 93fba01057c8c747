package zone

import (
	"fmt"

	"github.com/k-yomo/civiltime/pkg/timeutil"
)

// Formatter renders the wall clock fields of a Zone.
// Returning an error makes Format fall back to the default representation.
type Formatter func(year, month, day, hour, minute, second int) (string, error)

// Format renders the Zone with f.
// The default `YYYY-MM-DD hh:mm:ss` representation is returned when f is nil or fails.
func (z *Zone) Format(f Formatter) string {
	if f == nil {
		return z.datetime
	}
	result, err := f(z.year, z.month, z.day, z.hour, z.minute, z.second)
	if err != nil {
		return z.datetime
	}
	return result
}

// DateString returns the date part in `YYYY-MM-DD`.
func (z *Zone) DateString() string {
	return timeutil.FormatDate(z.year, z.month, z.day)
}

// TimeString returns the time part in `hh:mm:ss`.
func (z *Zone) TimeString() string {
	return timeutil.FormatClock(z.hour, z.minute, z.second)
}

// AMPM returns the time on a 12-hour clock (e.g. `1:30 PM`).
func (z *Zone) AMPM() string {
	hour := z.hour % 12
	if hour == 0 {
		hour = 12
	}
	period := "PM"
	// hour 24 is treated as midnight
	if z.hour < 12 || z.hour == 24 {
		period = "AM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, z.minute, period)
}
