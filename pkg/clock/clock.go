package clock

import (
	"time"

	"github.com/pkg/errors"
)

// Now returns the reference time used for relative time phrases.
// Tests replace it with MockTime.
var Now = time.Now

// SetTimeZone changes the process local timezone.
// Calendar based calculations against Now (e.g. month differences) follow it.
func SetTimeZone(timeZone string) error {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return errors.Wrap(err, "load local timezone")
	}
	time.Local = loc
	return nil
}
