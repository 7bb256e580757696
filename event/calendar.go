package event

import (
	"strings"
	"time"

	tzerrors "github.com/hrygo/eventtz/internal/errors"
)

// Unit is a calendar unit for StartOf and EndOf.
type Unit string

const (
	UnitSecond  Unit = "second"
	UnitMinute  Unit = "minute"
	UnitHour    Unit = "hour"
	UnitDay     Unit = "day"
	UnitWeek    Unit = "week"
	UnitMonth   Unit = "month"
	UnitQuarter Unit = "quarter"
	UnitYear    Unit = "year"
	UnitDecade  Unit = "decade"
	UnitCentury Unit = "century"
)

// ParseUnit parses a unit name such as "week" or "months".
func ParseUnit(s string) (Unit, error) {
	u := Unit(strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "s"))
	switch u {
	case UnitSecond, UnitMinute, UnitHour, UnitDay, UnitWeek, UnitMonth, UnitQuarter, UnitYear, UnitDecade, UnitCentury:
		return u, nil
	}
	return "", tzerrors.InvalidArgument("unknown calendar unit " + s)
}

// Add returns m shifted by d of absolute time.
func (m Moment) Add(d time.Duration) Moment {
	return m.derive(m.t.Add(d))
}

// Subtract returns m shifted back by d of absolute time.
func (m Moment) Subtract(d time.Duration) Moment {
	return m.derive(m.t.Add(-d))
}

// AddDate adds calendar years, months and days on the wall clock, so the
// time of day is kept across DST changes.
func (m Moment) AddDate(years, months, days int) Moment {
	return m.derive(m.t.AddDate(years, months, days))
}

// Sub returns the absolute duration m - other.
func (m Moment) Sub(other Moment) time.Duration {
	return m.t.Sub(other.t)
}

// StartOf returns the first instant of the unit containing m. Weeks start on
// Monday.
func (m Moment) StartOf(u Unit) (Moment, error) {
	start, err := startOf(m.t, u)
	if err != nil {
		return Moment{}, err
	}
	return m.derive(start), nil
}

// EndOf returns the last nanosecond of the unit containing m.
func (m Moment) EndOf(u Unit) (Moment, error) {
	start, err := startOf(m.t, u)
	if err != nil {
		return Moment{}, err
	}
	return m.derive(nextStart(start, u).Add(-time.Nanosecond)), nil
}

func startOf(t time.Time, u Unit) (time.Time, error) {
	loc := t.Location()
	year, month, day := t.Date()
	_, minute, second := t.Clock()

	// Sub-day units step back from the instant itself so a Moment inside a
	// DST fold stays on its own occurrence.
	nanos := time.Duration(t.Nanosecond())
	switch u {
	case UnitSecond:
		return t.Add(-nanos), nil
	case UnitMinute:
		return t.Add(-time.Duration(second)*time.Second - nanos), nil
	case UnitHour:
		return t.Add(-time.Duration(minute)*time.Minute - time.Duration(second)*time.Second - nanos), nil
	case UnitDay:
		return time.Date(year, month, day, 0, 0, 0, 0, loc), nil
	case UnitWeek:
		sinceMonday := (int(t.Weekday()) + 6) % 7
		return time.Date(year, month, day-sinceMonday, 0, 0, 0, 0, loc), nil
	case UnitMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, loc), nil
	case UnitQuarter:
		first := time.Month((int(month)-1)/3*3 + 1)
		return time.Date(year, first, 1, 0, 0, 0, 0, loc), nil
	case UnitYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, loc), nil
	case UnitDecade:
		return time.Date(year-year%10, time.January, 1, 0, 0, 0, 0, loc), nil
	case UnitCentury:
		return time.Date(year-(year-1)%100, time.January, 1, 0, 0, 0, 0, loc), nil
	}
	return time.Time{}, tzerrors.InvalidArgument("unknown calendar unit " + string(u))
}

// nextStart returns the start of the unit following the one starting at start.
func nextStart(start time.Time, u Unit) time.Time {
	year, month, day := start.Date()
	hour, minute, second := start.Clock()
	loc := start.Location()

	switch u {
	case UnitSecond:
		return start.Add(time.Second)
	case UnitMinute:
		return start.Add(time.Minute)
	case UnitHour:
		return start.Add(time.Hour)
	case UnitDay:
		return time.Date(year, month, day+1, hour, minute, second, 0, loc)
	case UnitWeek:
		return time.Date(year, month, day+7, hour, minute, second, 0, loc)
	case UnitMonth:
		return time.Date(year, month+1, 1, 0, 0, 0, 0, loc)
	case UnitQuarter:
		return time.Date(year, month+3, 1, 0, 0, 0, 0, loc)
	case UnitYear:
		return time.Date(year+1, time.January, 1, 0, 0, 0, 0, loc)
	case UnitDecade:
		return time.Date(year+10, time.January, 1, 0, 0, 0, 0, loc)
	default:
		return time.Date(year+100, time.January, 1, 0, 0, 0, 0, loc)
	}
}

// Interval is the difference between two Moments, decomposed into days,
// hours, minutes, seconds and sub-seconds of absolute time.
type Interval struct {
	// Duration is the absolute (non-negative) difference.
	Duration time.Duration
	// Invert is true when the other Moment is later than the receiver.
	Invert bool

	Days         int
	Hours        int
	Minutes      int
	Seconds      int
	Microseconds int
	Nanoseconds  int
}

// Diff returns the absolute difference between m and other.
func (m Moment) Diff(other Moment) Interval {
	d := m.t.Sub(other.t)
	return newInterval(d)
}

func newInterval(d time.Duration) Interval {
	iv := Interval{Duration: d}
	if d < 0 {
		iv.Duration = -d
		iv.Invert = true
	}

	rest := iv.Duration
	iv.Days = int(rest / (24 * time.Hour))
	rest -= time.Duration(iv.Days) * 24 * time.Hour
	iv.Hours = int(rest / time.Hour)
	rest -= time.Duration(iv.Hours) * time.Hour
	iv.Minutes = int(rest / time.Minute)
	rest -= time.Duration(iv.Minutes) * time.Minute
	iv.Seconds = int(rest / time.Second)
	rest -= time.Duration(iv.Seconds) * time.Second
	iv.Nanoseconds = int(rest)
	iv.Microseconds = int(rest / time.Microsecond)
	return iv
}

// InHours returns the whole number of hours in the interval.
func (iv Interval) InHours() int { return int(iv.Duration / time.Hour) }

// InMinutes returns the whole number of minutes in the interval.
func (iv Interval) InMinutes() int { return int(iv.Duration / time.Minute) }

// InSeconds returns the whole number of seconds in the interval.
func (iv Interval) InSeconds() int { return int(iv.Duration / time.Second) }
