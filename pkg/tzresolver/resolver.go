// Package tzresolver reads absolute instants on the wall clock of IANA timezones.
package tzresolver

import (
	"fmt"
	"time"
	// Bundles the IANA database so that resolution doesn't depend on the host's zoneinfo.
	_ "time/tzdata"

	"github.com/pkg/errors"
)

// Fields is the civil calendar and clock reading of an instant in a timezone.
type Fields struct {
	Year   int
	Month  int // 1-12
	Day    int // 1-31
	Hour   int // 0-23
	Minute int
	Second int
}

//go:generate mockgen -source=$GOFILE -package=mock_$GOPACKAGE -destination=../../mocks/pkg/$GOPACKAGE/mock_$GOFILE

// Resolver converts an absolute instant into civil fields for a timezone.
type Resolver interface {
	Resolve(instant time.Time, timezone string) (*Fields, error)
}

// Default resolves timezones with the IANA database shipped with Go.
var Default Resolver = NewResolver()

// UnknownTimezoneError is returned when the timezone database has no such timezone.
type UnknownTimezoneError struct {
	Timezone string
	Err      error
}

func (e *UnknownTimezoneError) Error() string {
	return fmt.Sprintf("Invalid time zone specified: %s", e.Timezone)
}

func (e *UnknownTimezoneError) Unwrap() error {
	return e.Err
}

type resolver struct{}

// NewResolver returns a Resolver backed by time.LoadLocation.
func NewResolver() Resolver {
	return &resolver{}
}

func (r *resolver) Resolve(instant time.Time, timezone string) (*Fields, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errors.WithStack(&UnknownTimezoneError{Timezone: timezone, Err: err})
	}
	return FieldsOf(instant.In(loc)), nil
}

// FieldsOf reads the fields of t in t's own location.
func FieldsOf(t time.Time) *Fields {
	return &Fields{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}
