package timeutil

import (
	"fmt"
	"time"
)

const (
	DateTimeLayout = "2006-01-02 15:04:05"
	DateLayout     = "2006-01-02"
	TimeLayout     = "15:04:05"
)

// FormatCivil renders calendar fields as `YYYY-MM-DD hh:mm:ss`.
// The fields are printed as they are, no normalization is applied.
func FormatCivil(year, month, day, hour, minute, second int) string {
	return fmt.Sprintf("%s %s", FormatDate(year, month, day), FormatClock(hour, minute, second))
}

func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

func FormatClock(hour, minute, second int) string {
	return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
}

// FormatInstant renders t in UTC as `YYYY-MM-DD hh:mm:ss`, dropping sub-second precision.
func FormatInstant(t time.Time) string {
	return t.UTC().Format(DateTimeLayout)
}

// ParseUTC parses `YYYY-MM-DD hh:mm:ss` as a UTC time.
func ParseUTC(datetime string) (time.Time, error) {
	return time.ParseInLocation(DateTimeLayout, datetime, time.UTC)
}
