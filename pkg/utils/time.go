package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidTimestamp = errors.New("invalid timestamp")

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
}

// ParseTimestamp accepts RFC3339 strings, a few common SQL-ish layouts
// (interpreted as UTC) and unix seconds or milliseconds.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	if isNumeric(value) {
		return parseUnix(value)
	}

	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

func isNumeric(value string) bool {
	for _, ch := range value {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return len(value) > 0
}

func parseUnix(value string) (time.Time, error) {
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
	}
	if len(value) >= 13 {
		return time.UnixMilli(n).UTC(), nil
	}
	return time.Unix(n, 0).UTC(), nil
}

// SecondsBetween returns the whole seconds from start to end, floored.
func SecondsBetween(start, end time.Time) int64 {
	return int64(math.Floor(end.Sub(start).Seconds()))
}

func SecondsToMinutes(seconds int64) int64 {
	return int64(math.Floor(float64(seconds) / 60))
}

func RoundToOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

func FormatPeriod(start, end time.Time) string {
	return fmt.Sprintf("%s - %s",
		start.Format("2006-01-02 15:04:05"),
		end.Format("2006-01-02 15:04:05"))
}
