// Package instant builds and formats the TT/UTC instants the eclipse
// solver works with: a civil date plus decimal TT hours, offset to an
// arbitrary t_hours, converted to UTC via a per-record ΔT, and formatted as
// millisecond-precision ISO-8601.
package instant

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrMalformedDate is wrapped with per-record context whenever dateYmd
// cannot be parsed as YYYY-MM-DD.
var ErrMalformedDate = errors.New("instant: malformed YYYY-MM-DD date")

const msPerHour = 3_600_000

// TT0 constructs the TT instant at t0 from a calendar date (YYYY-MM-DD,
// proleptic Gregorian, civil midnight UTC) and t0TtHours decimal hours
// within that date. t0TtHours >= 24 carries into following days.
//
// Returns the zero time.Time and a wrapped ErrMalformedDate if dateYmd does
// not parse; construction itself never panics.
func TT0(dateYmd string, t0TtHours float64) (time.Time, error) {
	midnight, err := time.Parse("2006-01-02", dateYmd)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: %w: %w", dateYmd, ErrMalformedDate, err)
	}
	ms := roundHalfAwayFromZero(t0TtHours * msPerHour)
	return midnight.Add(time.Duration(ms) * time.Millisecond), nil
}

// AtOffset adds t_hours (may be negative) to a TT instant, returning the TT
// instant at t0+t_hours.
func AtOffset(tt0 time.Time, tHours float64) time.Time {
	ms := roundHalfAwayFromZero(tHours * msPerHour)
	return tt0.Add(time.Duration(ms) * time.Millisecond)
}

// ToUTC converts a TT instant to UTC by subtracting deltaTSeconds (TT-UTC).
// deltaTSeconds may be negative (historical epochs).
func ToUTC(tt time.Time, deltaTSeconds float64) time.Time {
	ms := roundHalfAwayFromZero(deltaTSeconds * 1000)
	return tt.Add(-time.Duration(ms) * time.Millisecond)
}

// FormatUTC renders t as YYYY-MM-DDTHH:MM:SS.sssZ, exactly millisecond
// precision with a literal trailing Z, regardless of t's own Location.
func FormatUTC(t time.Time) string {
	u := t.UTC()
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%03dZ",
		u.Year(), u.Month(), u.Day(), u.Hour(), u.Minute(), u.Second(), u.Nanosecond()/1_000_000)
}

// roundHalfAwayFromZero rounds a fractional millisecond count to the
// nearest integer, ties away from zero, matching §4.3's carry rules for
// sub-millisecond fractional seconds.
func roundHalfAwayFromZero(v float64) int64 {
	if v >= 0 {
		return int64(math.Floor(v + 0.5))
	}
	return int64(math.Ceil(v - 0.5))
}
