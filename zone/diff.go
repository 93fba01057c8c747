package zone

import (
	"fmt"
	"time"

	"github.com/k-yomo/civiltime/pkg/clock"
)

const justNow = "Just now"

// Diff describes how long ago the Zone's instant was (e.g. `5 minutes ago`).
func (z *Zone) Diff() string {
	return z.DiffAt(clock.Now())
}

// DiffAt is Diff measured from now.
//
// Years are approximated as 365 days, while months are the difference of the
// calendar months of now and the instant (read in now's location), less one when
// now's day of the month hasn't reached the instant's yet. Months don't account
// for years, so they are only reported when the month difference is positive.
func (z *Zone) DiffAt(now time.Time) string {
	delta := now.Sub(z.instant).Milliseconds()
	if delta < 0 {
		return justNow
	}

	seconds := delta / 1000
	minutes := seconds / 60
	hours := minutes / 60
	days := hours / 24
	years := days / 365

	instant := z.instant.In(now.Location())
	months := int64(now.Month()) - int64(instant.Month())
	if now.Day() < instant.Day() {
		months--
	}

	switch {
	case years > 0:
		return ago(years, "year")
	case months > 0:
		return ago(months, "month")
	case days > 0:
		return ago(days, "day")
	case hours > 0:
		return ago(hours, "hour")
	case minutes > 0:
		return ago(minutes, "minute")
	case seconds > 0:
		return ago(seconds, "second")
	default:
		return justNow
	}
}

func ago(n int64, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
