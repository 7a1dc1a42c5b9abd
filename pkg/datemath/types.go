package datemath

import "errors"

// ISODate is the layout accepted for absolute due dates.
const ISODate = "2006-01-02"

var (
	ErrUnrecognized    = errors.New("unrecognized date expression")
	ErrInvalidDuration = errors.New("invalid duration format")
	ErrUnknownWeekday  = errors.New("unknown weekday")
)
