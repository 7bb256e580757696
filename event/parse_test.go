package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromISOFormat(t *testing.T) {
	london := MustCreateContext("Europe/London")

	tests := []struct {
		name  string
		input string
		want  time.Time // expected instant
	}{
		{"offset", "2025-06-01T14:00:00+02:00", time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
		{"zulu with nanoseconds", "2025-06-01T14:00:00.123456789Z", time.Date(2025, 6, 1, 14, 0, 0, 123456789, time.UTC)},
		{"compact offset", "2025-06-01T14:00:00+0530", time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)},
		{"basic format with offset", "20250601T140000Z", time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)},
		{"naive with T", "2025-06-01T14:00:00", time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)},
		{"naive with space", "2025-06-01 14:00", time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)},
		{"naive microseconds", "2025-06-01T14:00:00.000123", time.Date(2025, 6, 1, 13, 0, 0, 123000, time.UTC)},
		{"date only", "2025-06-01", time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)},
		{"basic date", "20250601", time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)},
		{"ordinal date", "2025-152", time.Date(2025, 5, 31, 23, 0, 0, 0, time.UTC)},
		{"surrounding spaces", "  2025-06-01T14:00:00Z ", time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := london.FromISOFormat(tt.input)
			require.NoError(t, err)
			assert.True(t, m.Time().Equal(tt.want), "got %s", m)
			assert.Equal(t, "Europe/London", m.Location().String())
		})
	}
}

func TestFromISOFormatAssumeTimezone(t *testing.T) {
	london := MustCreateContext("Europe/London")

	m, err := london.FromISOFormat("2025-06-01T14:00:00", AssumeTimezone("America/New_York"))
	require.NoError(t, err)
	assert.Equal(t, 19, m.Hour())

	// An explicit offset wins over the assumed timezone.
	m, err = london.FromISOFormat("2025-06-01T14:00:00Z", AssumeTimezone("America/New_York"))
	require.NoError(t, err)
	assert.Equal(t, 15, m.Hour())
}

func TestFromISOFormatErrors(t *testing.T) {
	ctx := MustCreateContext("UTC")

	for _, input := range []string{"", "   ", "yesterday", "2025-13-45", "14:00"} {
		t.Run(input, func(t *testing.T) {
			_, err := ctx.FromISOFormat(input)
			assert.ErrorIs(t, err, ErrParseFailed)
		})
	}

	_, err := ctx.FromISOFormat("2025-06-01", AssumeTimezone("Bad/Zone"))
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}
