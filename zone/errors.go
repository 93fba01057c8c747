package zone

import "errors"

type ErrorKind string

const (
	KindInvalidDatetime   ErrorKind = "INVALID_DATETIME"
	KindInvalidTimezone   ErrorKind = "INVALID_TIMEZONE"
	KindResolutionFailure ErrorKind = "RESOLUTION_FAILURE"
)

var (
	ErrInvalidDatetime   = errors.New("invalid datetime")
	ErrInvalidTimezone   = errors.New("invalid timezone")
	ErrResolutionFailure = errors.New("timezone resolution failure")
)

// ZoneError is returned when a Zone can't be constructed.
// Message is reported as is, the cause (if any) is available through errors.Unwrap.
type ZoneError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ZoneError) Error() string {
	return e.Message
}

func (e *ZoneError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *ZoneError) Is(target error) bool {
	switch e.Kind {
	case KindInvalidDatetime:
		return target == ErrInvalidDatetime
	case KindInvalidTimezone:
		return target == ErrInvalidTimezone
	case KindResolutionFailure:
		return target == ErrResolutionFailure
	default:
		return false
	}
}

func newResolutionError(err error) *ZoneError {
	return &ZoneError{
		Kind:    KindResolutionFailure,
		Message: err.Error(),
		Err:     err,
	}
}
