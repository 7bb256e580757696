package event

import (
	"encoding/json"
	"time"

	tzerrors "github.com/hrygo/eventtz/internal/errors"
)

// Moment is an immutable point in time bound to a Context. Its wall-clock
// fields are always those of the Context's forced timezone.
//
// Moments are created only through Context factories. The zero Moment has no
// Context and is rejected by every normalizing entry point.
//
// Compare Moments with Equal, not ==: == also compares the Context pointer and
// the location, so two Moments for the same instant can differ under ==.
type Moment struct {
	t   time.Time
	ctx *Context
}

// Context returns the owning Context, or nil for the zero Moment.
func (m Moment) Context() *Context { return m.ctx }

// Time returns the underlying time.Time in the forced timezone.
func (m Moment) Time() time.Time { return m.t }

// Location returns the forced timezone location.
func (m Moment) Location() *time.Location { return m.t.Location() }

// IsZero reports whether m was never constructed through a Context.
func (m Moment) IsZero() bool { return m.ctx == nil }

// Year returns the year on the forced wall clock.
func (m Moment) Year() int { return m.t.Year() }

// Month returns the month on the forced wall clock.
func (m Moment) Month() time.Month { return m.t.Month() }

// Day returns the day of the month.
func (m Moment) Day() int { return m.t.Day() }

// Hour returns the hour, in the range [0, 23].
func (m Moment) Hour() int { return m.t.Hour() }

// Minute returns the minute, in the range [0, 59].
func (m Moment) Minute() int { return m.t.Minute() }

// Second returns the second, in the range [0, 59].
func (m Moment) Second() int { return m.t.Second() }

// Nanosecond returns the nanosecond offset within the second.
func (m Moment) Nanosecond() int { return m.t.Nanosecond() }

// Microsecond returns the microsecond offset within the second.
func (m Moment) Microsecond() int { return m.t.Nanosecond() / int(time.Microsecond) }

// Weekday returns the day of the week on the forced wall clock.
func (m Moment) Weekday() time.Weekday { return m.t.Weekday() }

// YearDay returns the day of the year, in the range [1, 366].
func (m Moment) YearDay() int { return m.t.YearDay() }

// Unix returns the Unix time in seconds.
func (m Moment) Unix() int64 { return m.t.Unix() }

// UnixMicro returns the Unix time in microseconds.
func (m Moment) UnixMicro() int64 { return m.t.UnixMicro() }

// IsDST reports whether daylight saving time is in effect.
func (m Moment) IsDST() bool { return m.t.IsDST() }

// WallClock returns the wall-clock fields.
func (m Moment) WallClock() WallClock { return WallClockOf(m.t) }

// TimezoneName returns the canonical name of the forced timezone.
func (m Moment) TimezoneName() string {
	if m.ctx == nil {
		return ""
	}
	return m.ctx.name
}

// Abbreviation returns the zone abbreviation in effect, e.g. "BST".
func (m Moment) Abbreviation() string {
	name, _ := m.t.Zone()
	return name
}

// Offset returns the UTC offset in effect.
func (m Moment) Offset() time.Duration {
	_, offset := m.t.Zone()
	return time.Duration(offset) * time.Second
}

// OffsetHours returns the UTC offset in hours, e.g. 5.5 for Asia/Kolkata.
func (m Moment) OffsetHours() float64 {
	return m.Offset().Hours()
}

// Equal reports whether m and other denote the same absolute instant.
func (m Moment) Equal(other Moment) bool { return m.t.Equal(other.t) }

// Before reports whether m is before other.
func (m Moment) Before(other Moment) bool { return m.t.Before(other.t) }

// After reports whether m is after other.
func (m Moment) After(other Moment) bool { return m.t.After(other.t) }

// Compare returns -1, 0 or +1 as m is before, equal to or after other.
func (m Moment) Compare(other Moment) int { return m.t.Compare(other.t) }

// IsSameMoment reports whether other denotes the same absolute instant as m,
// to the nanosecond. other may be a Moment, time.Time, WallClock (read in m's
// forced timezone) or any Instant. Any other value yields false.
func (m Moment) IsSameMoment(other any) bool {
	if m.ctx == nil {
		return false
	}
	o, err := m.ctx.FromAnyDatetime(other)
	if err != nil {
		// Type mismatches and unconstructed moments are simply not the same moment.
		return false
	}
	return m.t.Equal(o.t)
}

// Convert returns the same instant normalized into target.
func (m Moment) Convert(target *Context) (Moment, error) {
	if m.ctx == nil {
		return Moment{}, tzerrors.InstantiationDisabled("moment was not created through a context")
	}
	if target == nil {
		return Moment{}, tzerrors.InvalidArgument("nil target context")
	}
	return target.FromAnyDatetime(m.t.In(target.loc))
}

// String returns the RFC 3339 representation followed by the zone name.
func (m Moment) String() string {
	return m.t.Format(time.RFC3339Nano) + " " + m.TimezoneName()
}

// MarshalText implements encoding.TextMarshaler using RFC 3339 with nanoseconds.
func (m Moment) MarshalText() ([]byte, error) {
	return m.t.MarshalText()
}

// MarshalJSON implements json.Marshaler. The zero Moment encodes as null.
func (m Moment) MarshalJSON() ([]byte, error) {
	if m.ctx == nil {
		return []byte("null"), nil
	}
	return json.Marshal(m.t.Format(time.RFC3339Nano))
}

// derive wraps a time computed from m in m's Context. It is the cloning path
// used by arithmetic and calendar operations.
func (m Moment) derive(t time.Time) Moment {
	if m.ctx == nil {
		return Moment{t: t}
	}
	return m.ctx.normalize(t)
}
