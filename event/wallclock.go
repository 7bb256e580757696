package event

import (
	"fmt"
	"time"
)

// WallClock holds naive wall-clock fields with no timezone attached.
//
// It is the input shape for naive datetimes: normalizing entry points read the
// fields literally as wall-clock time in an assumed timezone.
type WallClock struct {
	Year       int
	Month      time.Month
	Day        int
	Hour       int
	Minute     int
	Second     int
	Nanosecond int
}

// WallClockOf returns the wall-clock fields of t as displayed in t's location.
func WallClockOf(t time.Time) WallClock {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return WallClock{
		Year:       year,
		Month:      month,
		Day:        day,
		Hour:       hour,
		Minute:     minute,
		Second:     second,
		Nanosecond: t.Nanosecond(),
	}
}

// In resolves the fields as wall-clock time in loc. Out-of-range fields are
// normalized and DST gaps and folds are resolved the way time.Date does.
func (w WallClock) In(loc *time.Location) time.Time {
	return time.Date(w.Year, w.Month, w.Day, w.Hour, w.Minute, w.Second, w.Nanosecond, loc)
}

// String formats the fields as an ISO-8601 local datetime.
func (w WallClock) String() string {
	s := fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d", w.Year, int(w.Month), w.Day, w.Hour, w.Minute, w.Second)
	if w.Nanosecond != 0 {
		s += fmt.Sprintf(".%09d", w.Nanosecond)
	}
	return s
}

// Fields is the raw field tuple accepted by Context.New.
//
// A nil Location marks a bare construction attempt, which Context.New
// rejects. Derived-value paths that already carry a resolved location set it.
type Fields struct {
	WallClock
	Location *time.Location
}

// WallClockCheck describes how a wall-clock time resolves in a Context.
type WallClockCheck struct {
	// Resolved is the instant the wall-clock fields resolve to.
	Resolved time.Time
	// Skipped is true when the time falls in a DST gap and does not exist.
	Skipped bool
	// Ambiguous is true when the time occurs twice because of a DST fold.
	Ambiguous bool
}

// CheckWallClock reports whether w exists, and whether it is unique, in the
// Context's forced timezone.
//
// Spring forward: in Europe/London on 2025-03-30 the clock jumps from 00:59:59
// to 02:00:00, so 01:30 is skipped and resolves to 02:30 BST.
//
// Fall back: on 2025-10-26 01:30 happens twice, first in BST then in GMT.
func (c *Context) CheckWallClock(w WallClock) WallClockCheck {
	naive := w.In(time.UTC)
	want := WallClockOf(naive)

	// Every offset in effect within a day of the naive instant is a candidate.
	seen := make(map[int]bool, 3)
	matches := 0
	for _, probe := range []time.Time{naive.Add(-24 * time.Hour), naive, naive.Add(24 * time.Hour)} {
		_, offset := probe.In(c.loc).Zone()
		if seen[offset] {
			continue
		}
		seen[offset] = true
		candidate := naive.Add(-time.Duration(offset) * time.Second).In(c.loc)
		if WallClockOf(candidate) == want {
			matches++
		}
	}

	return WallClockCheck{
		Resolved:  w.In(c.loc),
		Skipped:   matches == 0,
		Ambiguous: matches > 1,
	}
}
