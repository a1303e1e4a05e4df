package rules

import (
	"errors"
	"strings"
	"time"
)

var clockLayouts = []string{"15:04", "3:04 PM", "03:04 PM", "3:04PM", "03:04PM"}

// Combine merges a calendar date with the hour and minute of a clock value
// into one instant, seconds zeroed, in the date's location. Combining a date
// with its own time portion reproduces the original instant (to the minute).
func Combine(date, clock time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		date.Location(),
	)
}

// CombineUTC is Combine with the result pinned to UTC rather than the date's
// location. Callers that want an explicit UTC instant use this mode.
func CombineUTC(date, clock time.Time) time.Time {
	date = date.UTC()
	clock = clock.UTC()
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		time.UTC,
	)
}

// CombineClock merges a calendar date with a clock string such as "19:30".
func CombineClock(date time.Time, clock string) (time.Time, error) {
	tod, err := ParseClock(clock)
	if err != nil {
		return time.Time{}, err
	}
	return Combine(date, tod), nil
}

// ParseClock parses a time-of-day string in 24-hour or 12-hour form.
func ParseClock(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, errors.New("time is required")
	}
	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, strings.ToUpper(raw)); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, errors.New("invalid time of day")
}
