// Package zone converts UTC datetimes into the wall clock reading of a timezone.
package zone

import (
	"fmt"
	"time"

	"github.com/k-yomo/civiltime/pkg/timeutil"
	"github.com/k-yomo/civiltime/pkg/tzresolver"
	"github.com/k-yomo/civiltime/pkg/validate"
)

// Zone is a UTC datetime read on the wall clock of a timezone.
// A Zone is immutable once constructed.
type Zone struct {
	instant  time.Time
	datetime string
	timezone string

	year   int
	month  int
	day    int
	hour   int
	minute int
	second int
}

// New resolves datetime (`YYYY-MM-DD hh:mm:ss`, assumed to be UTC) in timezone.
// All the returned errors are *ZoneError.
func New(datetime string, timezone string) (*Zone, error) {
	return NewWithResolver(datetime, timezone, tzresolver.Default)
}

// NewFromTime resolves t in timezone. Sub-second precision is dropped.
func NewFromTime(t time.Time, timezone string) (*Zone, error) {
	return New(timeutil.FormatInstant(t), timezone)
}

// NewWithResolver is New with the timezone lookup delegated to resolver.
func NewWithResolver(datetime string, timezone string, resolver tzresolver.Resolver) (*Zone, error) {
	if !validate.IsDateTime(datetime) {
		return nil, &ZoneError{
			Kind:    KindInvalidDatetime,
			Message: fmt.Sprintf("Invalid datetime: %s", datetime),
		}
	}
	if !validate.IsFullStr(timezone) {
		return nil, &ZoneError{
			Kind:    KindInvalidTimezone,
			Message: fmt.Sprintf("Invalid timezone: %s", timezone),
		}
	}

	instant, err := timeutil.ParseUTC(datetime)
	if err != nil {
		return nil, newResolutionError(err)
	}
	fields, err := resolver.Resolve(instant, timezone)
	if err != nil {
		return nil, newResolutionError(err)
	}
	if fields == nil {
		return nil, newResolutionError(fmt.Errorf("no civil time resolved for '%s'", timezone))
	}

	return &Zone{
		instant:  instant,
		datetime: timeutil.FormatCivil(fields.Year, fields.Month, fields.Day, fields.Hour, fields.Minute, fields.Second),
		timezone: timezone,
		year:     fields.Year,
		month:    fields.Month,
		day:      fields.Day,
		hour:     fields.Hour,
		minute:   fields.Minute,
		second:   fields.Second,
	}, nil
}

// Instant returns the input datetime as a UTC time.
func (z *Zone) Instant() time.Time { return z.instant }

// Datetime returns the wall clock time in `YYYY-MM-DD hh:mm:ss`.
func (z *Zone) Datetime() string { return z.datetime }

func (z *Zone) Timezone() string { return z.timezone }
func (z *Zone) Year() int        { return z.year }
func (z *Zone) Month() int       { return z.month }
func (z *Zone) Day() int         { return z.day }
func (z *Zone) Hour() int        { return z.hour }
func (z *Zone) Minute() int      { return z.minute }
func (z *Zone) Second() int      { return z.second }

func (z *Zone) String() string {
	return z.datetime
}
