package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDuration(t *testing.T) {
	london := MustCreateContext("Europe/London")
	m := london.Datetime(2025, time.June, 1, 14, 0, 0, 0)

	later := m.Add(2*time.Hour + 30*time.Minute)
	assert.Equal(t, 16, later.Hour())
	assert.Equal(t, 30, later.Minute())
	assert.Equal(t, 1, later.Day())
	assert.Same(t, london, later.Context())

	earlier := m.Subtract(90 * time.Minute)
	assert.Equal(t, 12, earlier.Hour())
	assert.Equal(t, 30, earlier.Minute())

	// The original is unchanged.
	assert.Equal(t, 14, m.Hour())
}

func TestAddAcrossDaylightSaving(t *testing.T) {
	london := MustCreateContext("Europe/London")
	m := london.Datetime(2025, time.March, 29, 12, 0, 0, 0)

	nextDay := m.AddDate(0, 0, 1)
	assert.Equal(t, 12, nextDay.Hour())
	assert.Equal(t, 23*time.Hour, nextDay.Sub(m))

	absolute := m.Add(24 * time.Hour)
	assert.Equal(t, 13, absolute.Hour())
}

func TestDiff(t *testing.T) {
	london := MustCreateContext("Europe/London")
	start := london.Datetime(2025, time.June, 1, 14, 0, 0, 0)
	end := london.Datetime(2025, time.June, 1, 16, 45, 0, 0)

	iv := end.Diff(start)
	assert.False(t, iv.Invert)
	assert.Equal(t, 0, iv.Days)
	assert.Equal(t, 2, iv.Hours)
	assert.Equal(t, 45, iv.Minutes)
	assert.Equal(t, 0, iv.Seconds)
	assert.Equal(t, 2, iv.InHours())
	assert.Equal(t, 165, iv.InMinutes())
	assert.Equal(t, 9900, iv.InSeconds())

	back := start.Diff(end)
	assert.True(t, back.Invert)
	assert.Equal(t, 2, back.Hours)
	assert.Equal(t, 45, back.Minutes)
	assert.Equal(t, iv.Duration, back.Duration)
}

func TestDiffSubSecondAndDays(t *testing.T) {
	ctx := MustCreateContext("UTC")
	a := ctx.Datetime(2025, time.June, 1, 0, 0, 0, 0)
	b := ctx.Datetime(2025, time.June, 3, 1, 2, 3, 4005006)

	iv := b.Diff(a)
	assert.Equal(t, 2, iv.Days)
	assert.Equal(t, 1, iv.Hours)
	assert.Equal(t, 2, iv.Minutes)
	assert.Equal(t, 3, iv.Seconds)
	assert.Equal(t, 4005, iv.Microseconds)
	assert.Equal(t, 4005006, iv.Nanoseconds)
}

func TestDiffAcrossContexts(t *testing.T) {
	london := MustCreateContext("Europe/London")
	tokyo := MustCreateContext("Asia/Tokyo")

	a := london.Datetime(2025, time.June, 1, 14, 0, 0, 0)
	b := tokyo.Datetime(2025, time.June, 1, 22, 0, 0, 0)
	assert.Equal(t, time.Duration(0), a.Sub(b))
}

func TestStartOfAndEndOf(t *testing.T) {
	london := MustCreateContext("Europe/London")
	m := london.Datetime(2025, time.June, 15, 13, 45, 30, 123)

	tests := []struct {
		unit      Unit
		wantStart WallClock
		wantEnd   WallClock
	}{
		{UnitSecond,
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 13, Minute: 45, Second: 30},
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 13, Minute: 45, Second: 30, Nanosecond: 999999999}},
		{UnitMinute,
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 13, Minute: 45},
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 13, Minute: 45, Second: 59, Nanosecond: 999999999}},
		{UnitHour,
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 13},
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 13, Minute: 59, Second: 59, Nanosecond: 999999999}},
		{UnitDay,
			WallClock{Year: 2025, Month: time.June, Day: 15},
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}},
		{UnitWeek,
			WallClock{Year: 2025, Month: time.June, Day: 9},
			WallClock{Year: 2025, Month: time.June, Day: 15, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}},
		{UnitMonth,
			WallClock{Year: 2025, Month: time.June, Day: 1},
			WallClock{Year: 2025, Month: time.June, Day: 30, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}},
		{UnitQuarter,
			WallClock{Year: 2025, Month: time.April, Day: 1},
			WallClock{Year: 2025, Month: time.June, Day: 30, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}},
		{UnitYear,
			WallClock{Year: 2025, Month: time.January, Day: 1},
			WallClock{Year: 2025, Month: time.December, Day: 31, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}},
		{UnitDecade,
			WallClock{Year: 2020, Month: time.January, Day: 1},
			WallClock{Year: 2029, Month: time.December, Day: 31, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}},
		{UnitCentury,
			WallClock{Year: 2001, Month: time.January, Day: 1},
			WallClock{Year: 2100, Month: time.December, Day: 31, Hour: 23, Minute: 59, Second: 59, Nanosecond: 999999999}},
	}

	for _, tt := range tests {
		t.Run(string(tt.unit), func(t *testing.T) {
			start, err := m.StartOf(tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStart, start.WallClock())
			assert.Equal(t, "Europe/London", start.TimezoneName())

			end, err := m.EndOf(tt.unit)
			require.NoError(t, err)
			assert.Equal(t, tt.wantEnd, end.WallClock())
		})
	}
}

func TestStartOfWeekOnSunday(t *testing.T) {
	ctx := MustCreateContext("America/New_York")
	sunday := ctx.DateAt(2025, time.June, 15)
	require.Equal(t, time.Sunday, sunday.Weekday())

	start, err := sunday.StartOf(UnitWeek)
	require.NoError(t, err)
	assert.Equal(t, time.Monday, start.Weekday())
	assert.Equal(t, 9, start.Day())
	assert.Equal(t, 0, start.Hour())

	end, err := sunday.EndOf(UnitMonth)
	require.NoError(t, err)
	assert.Equal(t, 30, end.Day())
}

func TestEndOfDayOnDaylightSavingChange(t *testing.T) {
	london := MustCreateContext("Europe/London")
	m := london.Datetime(2025, time.March, 30, 12, 0, 0, 0)

	start, err := m.StartOf(UnitDay)
	require.NoError(t, err)
	end, err := m.EndOf(UnitDay)
	require.NoError(t, err)

	assert.Equal(t, 23*time.Hour-time.Nanosecond, end.Sub(start))
}

func TestStartOfKeepsFirstOccurrenceInFold(t *testing.T) {
	london := MustCreateContext("Europe/London")
	// 01:30:15 happens twice on 2025-10-26; Datetime picks the GMT one.
	m := london.Datetime(2025, time.October, 26, 1, 30, 15, 0).Add(-time.Hour)
	require.Equal(t, "BST", m.Abbreviation())

	for _, u := range []Unit{UnitSecond, UnitMinute, UnitHour} {
		t.Run(string(u), func(t *testing.T) {
			start, err := m.StartOf(u)
			require.NoError(t, err)
			end, err := m.EndOf(u)
			require.NoError(t, err)

			assert.False(t, start.Time().After(m.Time()))
			assert.False(t, end.Time().Before(m.Time()))
			assert.Equal(t, "BST", start.Abbreviation())
		})
	}

	hour, err := m.StartOf(UnitHour)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.October, 26, 0, 0, 0, 0, time.UTC), hour.Time().UTC())

	end, err := m.EndOf(UnitHour)
	require.NoError(t, err)
	assert.Equal(t, "2025-10-26T01:59:59.999999999+01:00", end.Time().Format(time.RFC3339Nano))
}

func TestParseUnit(t *testing.T) {
	tests := []struct {
		input   string
		want    Unit
		wantErr bool
	}{
		{input: "week", want: UnitWeek},
		{input: "Months", want: UnitMonth},
		{input: " day ", want: UnitDay},
		{input: "centuries", wantErr: true},
		{input: "fortnight", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseUnit(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := MustCreateContext("UTC").Now().StartOf(Unit("fortnight"))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
