package event

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type unixInstant int64

func (u unixInstant) Time() time.Time { return time.Unix(int64(u), 0) }

func TestDatetimeIsWallClockInForcedTimezone(t *testing.T) {
	london := MustCreateContext("Europe/London")
	m := london.Datetime(2025, time.June, 1, 14, 0, 0, 0)

	assert.Equal(t, 14, m.Hour())
	assert.Equal(t, 13, m.Time().UTC().Hour())
	assert.Equal(t, "Europe/London", m.TimezoneName())
	assert.Equal(t, 1.0, m.OffsetHours())
	assert.True(t, m.IsDST())
}

func TestDateAtIsMidnight(t *testing.T) {
	ctx := MustCreateContext("America/New_York")
	m := ctx.DateAt(2025, time.June, 1)

	assert.Equal(t, WallClock{Year: 2025, Month: time.June, Day: 1}, m.WallClock())
	assert.Equal(t, "EDT", m.Abbreviation())
}

func TestNewRejectsBareConstruction(t *testing.T) {
	ctx := MustCreateContext("UTC")

	_, err := ctx.New(Fields{WallClock: WallClock{Year: 2025, Month: time.June, Day: 1, Hour: 14}})
	assert.ErrorIs(t, err, ErrInstantiationDisabled)

	tokyo := MustCreateContext("Asia/Tokyo")
	m, err := ctx.New(Fields{
		WallClock: WallClock{Year: 2025, Month: time.June, Day: 1, Hour: 9},
		Location:  tokyo.Location(),
	})
	require.NoError(t, err)
	assert.Equal(t, 0, m.Hour())
	assert.Equal(t, "UTC", m.TimezoneName())
}

func TestFromAnyDatetime(t *testing.T) {
	london := MustCreateContext("Europe/London")
	ny := MustCreateContext("America/New_York")
	source := ny.Datetime(2025, time.June, 1, 9, 0, 0, 0)
	utc := time.Date(2025, time.June, 1, 13, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input any
	}{
		{"moment from another context", source},
		{"moment pointer", &source},
		{"aware time", utc},
		{"aware time pointer", &utc},
		{"naive wall clock", WallClock{Year: 2025, Month: time.June, Day: 1, Hour: 14}},
		{"naive wall clock pointer", &WallClock{Year: 2025, Month: time.June, Day: 1, Hour: 14}},
		{"instant", unixInstant(utc.Unix())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := london.FromAnyDatetime(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 14, m.Hour())
			assert.True(t, m.Time().Equal(utc))
			assert.Same(t, london, m.Context())
		})
	}
}

func TestFromAnyDatetimeErrors(t *testing.T) {
	ctx := MustCreateContext("UTC")

	tests := []struct {
		name  string
		input any
		want  error
	}{
		{"zero moment", Moment{}, ErrInstantiationDisabled},
		{"string", "2025-06-01", ErrTypeMismatch},
		{"integer", 42, ErrTypeMismatch},
		{"nil", nil, ErrTypeMismatch},
		{"nil time pointer", (*time.Time)(nil), ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ctx.FromAnyDatetime(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNaiveInputIsNotShiftedAsUTC(t *testing.T) {
	tokyo := MustCreateContext("Asia/Tokyo")

	m, err := tokyo.FromAnyDatetime(WallClock{Year: 2025, Month: time.June, Day: 1, Hour: 14, Minute: 30})
	require.NoError(t, err)

	assert.Equal(t, 14, m.Hour())
	assert.Equal(t, 30, m.Minute())
	assert.Equal(t, 5, m.Time().UTC().Hour())
}

func TestFromAnyDatetimeRoundTrip(t *testing.T) {
	for _, name := range []string{"UTC", "Europe/London", "America/New_York", "Asia/Kolkata", "Australia/Sydney"} {
		t.Run(name, func(t *testing.T) {
			ctx := MustCreateContext(name)
			m := ctx.Datetime(2025, time.March, 30, 1, 30, 15, 123456789)

			again, err := ctx.FromAnyDatetime(m)
			require.NoError(t, err)
			assert.True(t, again.Equal(m))
			assert.Equal(t, m.WallClock(), again.WallClock())
			assert.Equal(t, m.Abbreviation(), again.Abbreviation())
		})
	}
}

func TestFromDatetime(t *testing.T) {
	london := MustCreateContext("Europe/London")
	naive := WallClock{Year: 2025, Month: time.June, Day: 1, Hour: 14}

	m, err := london.FromDatetime(naive)
	require.NoError(t, err)
	assert.Equal(t, 14, m.Hour())

	m, err = london.FromDatetime(naive, AssumeTimezone("America/New_York"))
	require.NoError(t, err)
	assert.Equal(t, 19, m.Hour())

	aware := time.Date(2025, time.June, 1, 14, 0, 0, 0, time.UTC)
	m, err = london.FromDatetime(aware, AssumeTimezone("America/New_York"))
	require.NoError(t, err)
	assert.Equal(t, 15, m.Hour())

	_, err = london.FromDatetime(naive, AssumeTimezone("Nowhere/Special"))
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	_, err = london.FromDatetime(unixInstant(0))
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestDaylightSavingGap(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	london := MustCreateContext("Europe/London", WithLogger(logger))

	check := london.CheckWallClock(WallClock{Year: 2025, Month: time.March, Day: 30, Hour: 1, Minute: 30})
	assert.True(t, check.Skipped)
	assert.False(t, check.Ambiguous)

	m := london.Datetime(2025, time.March, 30, 1, 30, 0, 0)
	assert.Equal(t, 2, m.Hour())
	assert.Equal(t, 30, m.Minute())
	assert.Equal(t, "BST", m.Abbreviation())
	assert.Contains(t, buf.String(), "skipped")
}

func TestDaylightSavingFold(t *testing.T) {
	london := MustCreateContext("Europe/London")
	check := london.CheckWallClock(WallClock{Year: 2025, Month: time.October, Day: 26, Hour: 1, Minute: 30})
	assert.True(t, check.Ambiguous)
	assert.False(t, check.Skipped)

	ny := MustCreateContext("America/New_York")
	m := ny.Datetime(2025, time.November, 2, 1, 30, 0, 0)
	assert.Equal(t, 1, m.Hour())
	assert.Equal(t, 30, m.Minute())

	// Both occurrences of 01:30 survive normalization from an instant.
	first, err := london.FromAnyDatetime(time.Date(2025, time.October, 26, 0, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	second, err := london.FromAnyDatetime(time.Date(2025, time.October, 26, 1, 30, 0, 0, time.UTC))
	require.NoError(t, err)

	assert.Equal(t, first.WallClock(), second.WallClock())
	assert.Equal(t, "BST", first.Abbreviation())
	assert.Equal(t, "GMT", second.Abbreviation())
	assert.Equal(t, time.Hour, second.Sub(first))
}

func TestCheckWallClockOrdinaryTime(t *testing.T) {
	ctx := MustCreateContext("Europe/Paris")
	check := ctx.CheckWallClock(WallClock{Year: 2025, Month: time.June, Day: 1, Hour: 12})

	assert.False(t, check.Skipped)
	assert.False(t, check.Ambiguous)
	assert.Equal(t, 10, check.Resolved.UTC().Hour())
}
