package timestamp

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the Go reference layout for "YYYYMMDD HH:mm:SS".
const Layout = "20060102 15:04:05"

// Format is the human-readable form of Layout shown in help and errors.
const Format = "YYYYMMDD HH:mm:SS"

// ErrInvalidTimestamp is returned when a string does not match Layout
// or names an impossible date or time.
var ErrInvalidTimestamp = errors.New("invalid date/time")

// Parse converts s into Unix epoch seconds using the local time zone.
func Parse(s string) (int64, error) {
	return ParseInLocation(s, time.Local)
}

// ParseInLocation converts s into Unix epoch seconds, interpreting the
// wall clock time in loc.
func ParseInLocation(s string, loc *time.Location) (int64, error) {
	t, err := time.ParseInLocation(Layout, s, loc)
	if err != nil {
		return 0, fmt.Errorf("%w %q: expected format %q: %w", ErrInvalidTimestamp, s, Format, err)
	}
	return t.Unix(), nil
}
