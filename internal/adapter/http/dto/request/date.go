package request

import (
	"errors"
	"strings"
	"time"
)

const dayLayout = "2006-01-02"

var (
	ErrInvalidDate   = errors.New("invalid date: use RFC3339 or YYYY-MM-DD")
	ErrInvalidPeriod = errors.New("invalid period: start and end are required")
)

// ParseDate accepts RFC3339 or a bare YYYY-MM-DD day (UTC). With endOfDay a
// bare day resolves to its last nanosecond so that it covers the whole day.
func ParseDate(raw string, endOfDay bool) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return t, nil
	}
	day, err := time.Parse(dayLayout, raw)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	if endOfDay {
		return day.Add(24*time.Hour - time.Nanosecond), nil
	}
	return day, nil
}

// ParsePeriod reads the start/end query values of a period listing.
func ParsePeriod(start, end string) (time.Time, time.Time, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	s, err := ParseDate(start, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := ParseDate(end, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return s, e, nil
}

func parseOptionalDate(raw *string) (*time.Time, error) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, nil
	}
	t, err := ParseDate(*raw, false)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
