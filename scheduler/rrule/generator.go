package rrule

import (
	"sort"
	"time"

	"github.com/pkg/errors"

	"github.com/hrygo/eventtz/event"
)

// The search for rules that can never match, such as BYMONTH=2;BYMONTHDAY=30,
// gives up once no occurrence has been found for maxEmptyYears of calendar
// time and at least minEmptyPeriods periods.
const (
	maxEmptyYears   = 100
	minEmptyPeriods = 400
)

var subDailyUnits = map[Frequency]time.Duration{
	Secondly: time.Second,
	Minutely: time.Minute,
	Hourly:   time.Hour,
}

// Generator generates occurrences from a recurrence rule.
//
// Occurrences are computed on the start's wall clock in its Context and
// recast through Context.FromAnyDatetime, so a 10:00 daily rule stays at
// 10:00 across DST changes.
type Generator struct {
	rule  *Rule
	start event.Moment
	ctx   *event.Context
	until event.Moment
}

// NewGenerator creates a new occurrence generator starting at start (DTSTART).
func NewGenerator(rule *Rule, start event.Moment) (*Generator, error) {
	if rule == nil {
		return nil, errors.New("nil rule")
	}
	ctx := start.Context()
	if ctx == nil {
		return nil, errors.WithStack(event.ErrInstantiationDisabled)
	}

	g := &Generator{rule: rule, start: start, ctx: ctx}
	if !rule.Until.IsZero() {
		var until any = rule.Until
		if rule.UntilFloating {
			until = event.WallClockOf(rule.Until)
		}
		m, err := ctx.FromAnyDatetime(until)
		if err != nil {
			return nil, errors.Wrap(err, "normalize UNTIL")
		}
		g.until = m
	}
	return g, nil
}

// All generates all occurrences up to the limit.
// If COUNT is specified in the rule, it generates at most that many.
// If UNTIL is specified, it generates occurrences until that date.
// Otherwise, it generates up to maxOccurrences.
func (g *Generator) All(maxOccurrences int) ([]event.Moment, error) {
	var occurrences []event.Moment
	if maxOccurrences <= 0 {
		return occurrences, nil
	}
	err := g.iterate(func(m event.Moment) bool {
		occurrences = append(occurrences, m)
		return len(occurrences) < maxOccurrences
	})
	return occurrences, err
}

// Between generates occurrences between from and to (inclusive).
func (g *Generator) Between(from, to event.Moment) ([]event.Moment, error) {
	var occurrences []event.Moment
	err := g.iterate(func(m event.Moment) bool {
		if m.After(to) {
			return false
		}
		if !m.Before(from) {
			occurrences = append(occurrences, m)
		}
		return true
	})
	return occurrences, err
}

// iterate yields occurrences in order until yield returns false or the rule
// is exhausted.
func (g *Generator) iterate(yield func(event.Moment) bool) error {
	emitted := 0
	empty := 0
	lastHit := g.start.Time()
	for period := 0; ; {
		candidates, err := g.candidates(period)
		if err != nil {
			return err
		}
		if len(candidates) == 0 {
			empty++
			horizon := lastHit.AddDate(maxEmptyYears, 0, 0)
			if empty >= minEmptyPeriods && g.periodStart(period).After(horizon) {
				return nil
			}
			period = g.nextPeriod(period)
			continue
		}
		empty = 0
		lastHit = g.periodStart(period)
		period++

		for _, m := range candidates {
			if m.Before(g.start) {
				continue
			}
			if !g.until.IsZero() && m.After(g.until) {
				return nil
			}
			if g.rule.Count > 0 && emitted >= g.rule.Count {
				return nil
			}
			emitted++
			if !yield(m) {
				return nil
			}
		}
	}
}

// candidates returns the sorted, de-duplicated occurrences of one period.
func (g *Generator) candidates(period int) ([]event.Moment, error) {
	var raw []any
	step := period * g.rule.Interval
	start := g.start.Time()

	switch g.rule.Frequency {
	case Secondly, Minutely, Hourly:
		t := g.periodStart(period)
		if g.matchesDate(t) && g.matchesClock(t) {
			raw = append(raw, t)
		}
	case Daily:
		day := start.AddDate(0, 0, step)
		if g.matchesDate(day) {
			raw = g.atTimes(raw, day.Year(), day.Month(), day.Day())
		}
	case Weekly:
		raw = g.weekly(raw, start, step)
	case Monthly:
		month := time.Date(start.Year(), start.Month()+time.Month(step), 1, 0, 0, 0, 0, time.UTC)
		if g.matchesMonth(month.Month()) {
			for _, d := range g.monthDays(month.Year(), month.Month()) {
				raw = g.atTimes(raw, month.Year(), month.Month(), d)
			}
		}
	case Yearly:
		year := start.Year() + step
		if len(g.rule.ByDay) > 0 && len(g.rule.ByMonth) == 0 && len(g.rule.ByMonthDay) == 0 {
			for _, d := range g.yearDays(year) {
				raw = g.atTimes(raw, d.Year(), d.Month(), d.Day())
			}
			break
		}
		for _, month := range g.yearMonths() {
			for _, d := range g.monthDays(year, month) {
				raw = g.atTimes(raw, year, month, d)
			}
		}
	default:
		return nil, errors.Errorf("unsupported frequency %q", g.rule.Frequency)
	}

	moments := make([]event.Moment, 0, len(raw))
	for _, v := range raw {
		m, err := g.ctx.FromAnyDatetime(v)
		if err != nil {
			return nil, err
		}
		moments = append(moments, m)
	}
	sort.Slice(moments, func(i, j int) bool { return moments[i].Before(moments[j]) })

	unique := moments[:0]
	for i, m := range moments {
		if i > 0 && m.Equal(unique[len(unique)-1]) {
			continue
		}
		unique = append(unique, m)
	}
	return unique, nil
}

// periodStart returns the instant a period begins at: the candidate itself
// for sub-daily rules, the first of the month or year for monthly and
// yearly ones.
func (g *Generator) periodStart(period int) time.Time {
	step := period * g.rule.Interval
	start := g.start.Time()

	switch g.rule.Frequency {
	case Daily:
		return start.AddDate(0, 0, step)
	case Weekly:
		return start.AddDate(0, 0, 7*step)
	case Monthly:
		return time.Date(start.Year(), start.Month()+time.Month(step), 1, 0, 0, 0, 0, start.Location())
	case Yearly:
		return time.Date(start.Year()+step, time.January, 1, 0, 0, 0, 0, start.Location())
	}
	return start.Add(time.Duration(step) * subDailyUnits[g.rule.Frequency])
}

// nextPeriod returns the period to expand after the empty one. Sub-daily
// rules jump past the rest of a wall-clock day, hour or minute that BYMONTH,
// BYMONTHDAY, BYDAY, BYHOUR or BYMINUTE excludes.
func (g *Generator) nextPeriod(period int) int {
	unit, ok := subDailyUnits[g.rule.Frequency]
	if !ok {
		return period + 1
	}

	t := g.periodStart(period)
	_, minute, second := t.Clock()
	nanos := time.Duration(t.Nanosecond())

	var boundary time.Time
	switch {
	case !g.matchesDate(t):
		boundary = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location())
	case unit < time.Hour && !contains(g.rule.ByHour, t.Hour()):
		boundary = t.Add(time.Hour - time.Duration(minute)*time.Minute - time.Duration(second)*time.Second - nanos)
	case unit < time.Minute && !contains(g.rule.ByMinute, minute):
		boundary = t.Add(time.Minute - time.Duration(second)*time.Second - nanos)
	default:
		return period + 1
	}

	span := time.Duration(g.rule.Interval) * unit
	elapsed := boundary.Sub(g.start.Time())
	next := int((elapsed + span - 1) / span)
	if next <= period {
		return period + 1
	}
	return next
}

func (g *Generator) weekly(raw []any, start time.Time, step int) []any {
	wkst := time.Monday
	if g.rule.Wkst != "" {
		_, wkst, _ = g.rule.Wkst.split()
	}
	offset := (int(start.Weekday()) - int(wkst) + 7) % 7
	weekStart := time.Date(start.Year(), start.Month(), start.Day()-offset+7*step, 0, 0, 0, 0, time.UTC)

	days := []time.Weekday{start.Weekday()}
	if len(g.rule.ByDay) > 0 {
		days = days[:0]
		for _, d := range g.rule.ByDay {
			_, wd, _ := d.split()
			days = append(days, wd)
		}
	}
	for _, wd := range days {
		day := weekStart.AddDate(0, 0, (int(wd)-int(wkst)+7)%7)
		if g.matchesMonth(day.Month()) {
			raw = g.atTimes(raw, day.Year(), day.Month(), day.Day())
		}
	}
	return raw
}

// monthDays returns the days of month that match BYMONTHDAY and BYDAY, or
// the start's day of month when neither is set. Days a month lacks are
// skipped, as RFC 5545 requires.
func (g *Generator) monthDays(year int, month time.Month) []int {
	last := daysInMonth(year, month)
	var days []int

	switch {
	case len(g.rule.ByMonthDay) > 0:
		for _, d := range g.rule.ByMonthDay {
			if d < 0 {
				d = last + d + 1
			}
			if d < 1 || d > last {
				continue
			}
			if len(g.rule.ByDay) > 0 && !g.matchesWeekday(time.Date(year, month, d, 0, 0, 0, 0, time.UTC)) {
				continue
			}
			days = append(days, d)
		}
	case len(g.rule.ByDay) > 0:
		first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		for _, d := range g.rule.ByDay {
			n, wd, _ := d.split()
			days = append(days, nthWeekdays(first, last, n, wd)...)
		}
	default:
		if d := g.start.Day(); d <= last {
			days = append(days, d)
		}
	}
	return days
}

// yearDays expands BYDAY across a whole year; ordinals count within the year.
func (g *Generator) yearDays(year int) []time.Time {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(1, 0, -1).YearDay()
	var days []time.Time
	for _, d := range g.rule.ByDay {
		n, wd, _ := d.split()
		for _, yd := range nthWeekdays(first, last, n, wd) {
			days = append(days, first.AddDate(0, 0, yd-1))
		}
	}
	return days
}

func (g *Generator) yearMonths() []time.Month {
	if len(g.rule.ByMonth) > 0 {
		months := make([]time.Month, len(g.rule.ByMonth))
		for i, m := range g.rule.ByMonth {
			months[i] = time.Month(m)
		}
		return months
	}
	if len(g.rule.ByMonthDay) > 0 {
		return []time.Month{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	}
	return []time.Month{g.start.Month()}
}

// atTimes appends the wall-clock times of day selected by BYHOUR, BYMINUTE
// and BYSECOND (defaulting to the start's clock) on the given date.
func (g *Generator) atTimes(raw []any, year int, month time.Month, day int) []any {
	hours := orDefault(g.rule.ByHour, g.start.Hour())
	minutes := orDefault(g.rule.ByMinute, g.start.Minute())
	seconds := orDefault(g.rule.BySecond, g.start.Second())
	nsec := g.start.Nanosecond()

	for _, h := range hours {
		for _, mi := range minutes {
			for _, s := range seconds {
				raw = append(raw, event.WallClock{
					Year: year, Month: month, Day: day,
					Hour: h, Minute: mi, Second: s, Nanosecond: nsec,
				})
			}
		}
	}
	return raw
}

func (g *Generator) matchesDate(t time.Time) bool {
	if !g.matchesMonth(t.Month()) {
		return false
	}
	if len(g.rule.ByMonthDay) > 0 {
		last := daysInMonth(t.Year(), t.Month())
		found := false
		for _, d := range g.rule.ByMonthDay {
			if d < 0 {
				d = last + d + 1
			}
			if d == t.Day() {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return len(g.rule.ByDay) == 0 || g.matchesWeekday(t)
}

func (g *Generator) matchesClock(t time.Time) bool {
	return contains(g.rule.ByHour, t.Hour()) &&
		contains(g.rule.ByMinute, t.Minute()) &&
		contains(g.rule.BySecond, t.Second())
}

func (g *Generator) matchesMonth(month time.Month) bool {
	return contains(g.rule.ByMonth, int(month))
}

func (g *Generator) matchesWeekday(t time.Time) bool {
	for _, d := range g.rule.ByDay {
		if _, wd, _ := d.split(); wd == t.Weekday() {
			return true
		}
	}
	return false
}

// nthWeekdays returns the day numbers (1-based, within a span of last days
// starting at first) falling on wd. n selects the nth match, negative from
// the end; 0 selects all.
func nthWeekdays(first time.Time, last, n int, wd time.Weekday) []int {
	var all []int
	for d := 1 + (int(wd)-int(first.Weekday())+7)%7; d <= last; d += 7 {
		all = append(all, d)
	}
	switch {
	case n == 0:
		return all
	case n > 0 && n <= len(all):
		return []int{all[n-1]}
	case n < 0 && -n <= len(all):
		return []int{all[len(all)+n]}
	}
	return nil
}

// contains reports whether v is in list; an empty list matches everything.
func contains(list []int, v int) bool {
	if len(list) == 0 {
		return true
	}
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func orDefault(list []int, def int) []int {
	if len(list) > 0 {
		return list
	}
	return []int{def}
}

func daysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
