package event

import (
	"strings"
	"time"

	tzerrors "github.com/hrygo/eventtz/internal/errors"
)

// Layouts carrying a UTC offset. "Z07:00" also accepts a literal "Z".
// A fractional second after the seconds field is accepted even when the
// layout omits it.
var offsetLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z0700",
	"2006-01-02 15:04Z07:00",
	"2006-01-02 15:04:05 Z07:00",
	"20060102T150405Z0700",
	"20060102T150405Z07:00",
	"20060102T1504Z0700",
}

// Layouts without an offset. These parse as naive wall-clock fields.
var naiveLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"2006-01-02",
	"20060102T150405",
	"20060102T1504",
	"20060102",
	"2006-002",
	"2006/01/02 15:04:05",
	"2006/01/02 15:04",
	"2006/01/02",
	"2006-01",
}

// FromISOFormat parses an ISO-8601 string leniently. A string without an
// offset is read in the AssumeTimezone option if given, else in the forced
// timezone; a string with an offset keeps its instant.
func (c *Context) FromISOFormat(s string, opts ...NormalizeOption) (Moment, error) {
	t, aware, err := parseISO(s)
	if err != nil {
		return Moment{}, err
	}
	if aware {
		return c.normalize(t), nil
	}

	loc, err := c.assumedLocation(opts)
	if err != nil {
		return Moment{}, err
	}
	return c.normalize(WallClockOf(t).In(loc)), nil
}

// parseISO returns the parsed time and whether the input carried an offset.
// Naive results are returned in UTC with the literal wall-clock fields.
func parseISO(s string) (time.Time, bool, error) {
	input := strings.TrimSpace(s)
	if input == "" {
		return time.Time{}, false, tzerrors.ParseFailed(s, tzerrors.InvalidArgument("empty datetime string"))
	}

	var lastErr error
	for _, layout := range offsetLayouts {
		t, err := time.Parse(layout, input)
		if err == nil {
			return t, true, nil
		}
		lastErr = err
	}
	for _, layout := range naiveLayouts {
		t, err := time.Parse(layout, input)
		if err == nil {
			return t, false, nil
		}
		lastErr = err
	}

	return time.Time{}, false, tzerrors.ParseFailed(s, lastErr)
}
