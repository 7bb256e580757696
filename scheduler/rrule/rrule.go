// Package rrule provides RRULE (Recurrence Rule) parsing and generation.
// Supports a subset of iCalendar RFC 5545 recurrence rules.
package rrule

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Frequency represents the recurrence frequency.
type Frequency string

const (
	Secondly Frequency = "SECONDLY"
	Minutely Frequency = "MINUTELY"
	Hourly   Frequency = "HOURLY"
	Daily    Frequency = "DAILY"
	Weekly   Frequency = "WEEKLY"
	Monthly  Frequency = "MONTHLY"
	Yearly   Frequency = "YEARLY"
)

// Weekday represents the day of week for recurrence, optionally prefixed
// with an ordinal ("MO", "1MO", "-1FR").
type Weekday string

const (
	Sunday    Weekday = "SU"
	Monday    Weekday = "MO"
	Tuesday   Weekday = "TU"
	Wednesday Weekday = "WE"
	Thursday  Weekday = "TH"
	Friday    Weekday = "FR"
	Saturday  Weekday = "SA"
)

var weekdays = map[string]time.Weekday{
	"SU": time.Sunday,
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
}

// split returns the ordinal (0 when absent) and the weekday.
func (d Weekday) split() (int, time.Weekday, error) {
	s := string(d)
	if len(s) < 2 {
		return 0, 0, errors.Errorf("invalid weekday %q", s)
	}
	wd, ok := weekdays[s[len(s)-2:]]
	if !ok {
		return 0, 0, errors.Errorf("invalid weekday %q", s)
	}
	prefix := s[:len(s)-2]
	if prefix == "" {
		return 0, wd, nil
	}
	n, err := strconv.Atoi(prefix)
	if err != nil || n == 0 || n < -53 || n > 53 {
		return 0, 0, errors.Errorf("invalid weekday ordinal %q", s)
	}
	return n, wd, nil
}

// Rule represents a parsed recurrence rule.
type Rule struct {
	Frequency  Frequency // FREQ
	Interval   int       // INTERVAL (default 1)
	Count      int       // COUNT (number of occurrences)
	Until      time.Time // UNTIL (end date, inclusive)
	BySecond   []int     // BYSECOND
	ByMinute   []int     // BYMINUTE
	ByHour     []int     // BYHOUR
	ByDay      []Weekday // BYDAY
	ByMonthDay []int     // BYMONTHDAY
	ByMonth    []int     // BYMONTH
	Wkst       Weekday   // WKST (week start)

	// UntilFloating marks an UNTIL without "Z": its fields are wall-clock
	// time in the generator's context rather than UTC.
	UntilFloating bool
}

// Parser parses RRULE strings.
type Parser struct{}

// NewParser creates a new RRULE parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses an RRULE string into a Rule struct.
// Example: "FREQ=WEEKLY;BYDAY=MO,WE,FR;COUNT=10"
func (p *Parser) Parse(rrule string) (*Rule, error) {
	rule := &Rule{
		Interval: 1, // Default interval
	}

	rrule = strings.TrimPrefix(strings.TrimSpace(rrule), "RRULE:")
	if rrule == "" {
		return nil, errors.New("empty RRULE")
	}

	for _, part := range strings.Split(rrule, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, errors.Errorf("malformed RRULE part %q", part)
		}
		key := strings.ToUpper(strings.TrimSpace(kv[0]))
		value := strings.ToUpper(strings.TrimSpace(kv[1]))

		var err error
		switch key {
		case "FREQ":
			rule.Frequency, err = parseFrequency(value)
		case "INTERVAL":
			rule.Interval, err = parsePositive(key, value)
		case "COUNT":
			rule.Count, err = parsePositive(key, value)
		case "UNTIL":
			rule.Until, rule.UntilFloating, err = parseUntil(value)
		case "BYDAY":
			rule.ByDay, err = parseByDay(value)
		case "BYMONTHDAY":
			rule.ByMonthDay, err = parseIntList(key, value, -31, 31)
		case "BYMONTH":
			rule.ByMonth, err = parseIntList(key, value, 1, 12)
		case "BYHOUR":
			rule.ByHour, err = parseIntList(key, value, 0, 23)
		case "BYMINUTE":
			rule.ByMinute, err = parseIntList(key, value, 0, 59)
		case "BYSECOND":
			rule.BySecond, err = parseIntList(key, value, 0, 59)
		case "WKST":
			if _, ok := weekdays[value]; !ok {
				err = errors.Errorf("invalid WKST %q", value)
			}
			rule.Wkst = Weekday(value)
		default:
			err = errors.Errorf("unsupported RRULE part %s", key)
		}
		if err != nil {
			return nil, err
		}
	}

	// Validate
	if rule.Frequency == "" {
		return nil, errors.New("missing required FREQ in RRULE")
	}
	if rule.Count > 0 && !rule.Until.IsZero() {
		return nil, errors.New("COUNT and UNTIL are mutually exclusive")
	}

	return rule, nil
}

func parseFrequency(value string) (Frequency, error) {
	switch f := Frequency(value); f {
	case Secondly, Minutely, Hourly, Daily, Weekly, Monthly, Yearly:
		return f, nil
	}
	return "", errors.Errorf("invalid FREQ %q", value)
}

func parsePositive(key, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid %s", key)
	}
	if n < 1 {
		return 0, errors.Errorf("%s must be positive, got %d", key, n)
	}
	return n, nil
}

func parseUntil(value string) (time.Time, bool, error) {
	// RFC 5545 date-time format: YYYYMMDDTHHmmssZ, floating without Z, or a date.
	if t, err := time.Parse("20060102T150405Z", value); err == nil {
		return t, false, nil
	}
	if t, err := time.Parse("20060102T150405", value); err == nil {
		return t, true, nil
	}
	t, err := time.Parse("20060102", value)
	if err != nil {
		return time.Time{}, false, errors.Wrapf(err, "invalid UNTIL %q", value)
	}
	// A date UNTIL includes the whole day.
	return t.Add(24*time.Hour - time.Second), true, nil
}

func parseByDay(value string) ([]Weekday, error) {
	parts := strings.Split(value, ",")
	days := make([]Weekday, 0, len(parts))
	for _, part := range parts {
		day := Weekday(strings.TrimSpace(part))
		if _, _, err := day.split(); err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, nil
}

func parseIntList(key, value string, lo, hi int) ([]int, error) {
	parts := strings.Split(value, ",")
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		num, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", key)
		}
		if num < lo || num > hi || (key == "BYMONTHDAY" && num == 0) {
			return nil, errors.Errorf("%s value %d out of range", key, num)
		}
		nums = append(nums, num)
	}
	return nums, nil
}

// String returns the RRULE string representation.
func (r *Rule) String() string {
	var parts []string

	parts = append(parts, fmt.Sprintf("FREQ=%s", r.Frequency))

	if r.Interval > 1 {
		parts = append(parts, fmt.Sprintf("INTERVAL=%d", r.Interval))
	}

	if r.Count > 0 {
		parts = append(parts, fmt.Sprintf("COUNT=%d", r.Count))
	}

	if !r.Until.IsZero() {
		layout := "20060102T150405Z"
		if r.UntilFloating {
			layout = "20060102T150405"
		}
		parts = append(parts, fmt.Sprintf("UNTIL=%s", r.Until.Format(layout)))
	}

	if len(r.ByDay) > 0 {
		dayStrs := make([]string, len(r.ByDay))
		for i, day := range r.ByDay {
			dayStrs[i] = string(day)
		}
		parts = append(parts, fmt.Sprintf("BYDAY=%s", strings.Join(dayStrs, ",")))
	}

	for _, list := range []struct {
		key  string
		nums []int
	}{
		{"BYMONTHDAY", r.ByMonthDay},
		{"BYMONTH", r.ByMonth},
		{"BYHOUR", r.ByHour},
		{"BYMINUTE", r.ByMinute},
		{"BYSECOND", r.BySecond},
	} {
		if len(list.nums) > 0 {
			parts = append(parts, fmt.Sprintf("%s=%s", list.key, intListToString(list.nums)))
		}
	}

	if r.Wkst != "" {
		parts = append(parts, fmt.Sprintf("WKST=%s", r.Wkst))
	}

	return strings.Join(parts, ";")
}

func intListToString(nums []int) string {
	strs := make([]string, len(nums))
	for i, num := range nums {
		strs[i] = strconv.Itoa(num)
	}
	return strings.Join(strs, ",")
}
