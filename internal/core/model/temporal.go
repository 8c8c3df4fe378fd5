package model

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/pkg/errors"
)

var ErrInvalidTemporal = errors.New("invalid temporal value")

// QuarterHour is the granularity of appointment slots.
const QuarterHour = 15 * time.Minute

const (
	layoutDate           = "2006-01-02"
	layoutTimeMinute     = "15:04"
	layoutTimeSecond     = "15:04:05"
	layoutDateTimeMinute = layoutDate + "T" + layoutTimeMinute
	layoutDateTimeSecond = layoutDate + "T" + layoutTimeSecond
)

// Clock returns the current instant. Local date-times are derived from it
// in its own location.
type Clock func() time.Time

// Now returns the current local date-time of the given clock, or of the
// system clock if nil.
func Now(clock Clock) civil.DateTime {
	if clock == nil {
		clock = time.Now
	}

	return civil.DateTimeOf(clock())
}

// FormatDate encodes a calendar date as YYYY-MM-DD.
func FormatDate(d civil.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FormatTime encodes a time of day as HH:MM, or HH:MM:SS when the
// seconds are not zero. Sub-second precision is dropped.
func FormatTime(t civil.Time) string {
	if t.Second == 0 && t.Nanosecond == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
	}

	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// FormatDateTime encodes a local date-time as YYYY-MM-DDTHH:MM, or
// YYYY-MM-DDTHH:MM:SS when the seconds are not zero.
func FormatDateTime(dt civil.DateTime) string {
	return FormatDate(dt.Date) + "T" + FormatTime(dt.Time)
}

// ParseDate strictly parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (civil.Date, error) {
	t, err := time.Parse(layoutDate, s)
	if err != nil {
		return civil.Date{}, errors.Wrapf(ErrInvalidTemporal, "could not parse date '%s'", s)
	}

	return civil.DateOf(t), nil
}

// ParseTime strictly parses a HH:MM or HH:MM:SS time of day.
func ParseTime(s string) (civil.Time, error) {
	t, err := parseFirst(s, layoutTimeMinute, layoutTimeSecond)
	if err != nil {
		return civil.Time{}, errors.Wrapf(ErrInvalidTemporal, "could not parse time '%s'", s)
	}

	return truncateTime(civil.TimeOf(t)), nil
}

// ParseDateTime strictly parses a YYYY-MM-DDTHH:MM or YYYY-MM-DDTHH:MM:SS
// local date-time. Zone designators and offsets are rejected.
func ParseDateTime(s string) (civil.DateTime, error) {
	t, err := parseFirst(s, layoutDateTimeMinute, layoutDateTimeSecond)
	if err != nil {
		return civil.DateTime{}, errors.Wrapf(ErrInvalidTemporal, "could not parse date-time '%s'", s)
	}

	dt := civil.DateTimeOf(t)
	dt.Time = truncateTime(dt.Time)

	return dt, nil
}

// CeilQuarterHour rounds the given date-time up to the next quarter-hour
// boundary. Values already on a boundary are kept. The result has minute
// precision.
func CeilQuarterHour(dt civil.DateTime) civil.DateTime {
	t := dt.In(time.UTC)

	rounded := t.Truncate(QuarterHour)
	if rounded.Before(t) {
		rounded = rounded.Add(QuarterHour)
	}

	return civil.DateTimeOf(rounded)
}

// TruncateMinute drops seconds and sub-seconds.
func TruncateMinute(dt civil.DateTime) civil.DateTime {
	dt.Time.Second = 0
	dt.Time.Nanosecond = 0
	return dt
}

func truncateTime(t civil.Time) civil.Time {
	t.Nanosecond = 0
	return t
}

// parseFirst parses s with the first matching layout. Fractional seconds,
// which time.Parse accepts after the seconds field, are rejected.
func parseFirst(s string, layouts ...string) (time.Time, error) {
	if strings.ContainsAny(s, ".,") {
		return time.Time{}, errors.Errorf("unexpected fractional seconds in '%s'", s)
	}

	var lastErr error
	for _, l := range layouts {
		t, err := time.Parse(l, s)
		if err != nil {
			lastErr = err
			continue
		}

		return t, nil
	}

	return time.Time{}, errors.WithStack(lastErr)
}
