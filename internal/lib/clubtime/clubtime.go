// Package clubtime anchors the club's naive date/time values to its home
// timezone. Uzbekistan uses a fixed UTC+5 offset year-round (no DST), so a
// constant zone is enough; the host timezone is never consulted.
package clubtime

import (
	"fmt"
	"time"
)

// Location is the club's home timezone, fixed at UTC+5.
var Location = time.FixedZone("UTC+5", 5*60*60)

// Layouts for the stored naive values.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// ZoneClock returns the current instant expressed in the club timezone.
type ZoneClock struct{}

// Now implements domain.Clock.
func (ZoneClock) Now() time.Time {
	return time.Now().In(Location)
}

// StartInstant converts a stored date ("2006-01-02") and wall-clock time
// ("15:04") pair into the absolute instant that wall-clock time represents
// in the club timezone. Inputs are expected to be validated upstream; a
// malformed pair returns an error rather than a zero instant.
func StartInstant(date, hhmm string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+hhmm, Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse event start %q %q: %w", date, hhmm, err)
	}
	return t, nil
}

// ValidDate reports whether s is a well-formed calendar day.
func ValidDate(s string) bool {
	_, err := time.ParseInLocation(DateLayout, s, Location)
	return err == nil
}

// ValidTime reports whether s is a well-formed HH:mm wall-clock time.
func ValidTime(s string) bool {
	_, err := time.ParseInLocation(TimeLayout, s, Location)
	return err == nil
}
