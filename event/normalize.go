package event

import (
	"time"

	tzerrors "github.com/hrygo/eventtz/internal/errors"
	"github.com/hrygo/eventtz/timezone"
)

// Instant is implemented by values that can report the absolute instant they
// denote, such as Moment itself or adapters around other time libraries.
type Instant interface {
	Time() time.Time
}

// NormalizeOption configures FromDatetime and FromISOFormat.
type NormalizeOption func(*normalizeOptions)

type normalizeOptions struct {
	assumeTimezone string
}

// AssumeTimezone sets the timezone naive input is read in. Without it naive
// input is read in the Context's forced timezone. Aware input ignores it.
func AssumeTimezone(name string) NormalizeOption {
	return func(o *normalizeOptions) {
		o.assumeTimezone = name
	}
}

// normalize re-expresses t in the forced timezone and wraps it. It is the
// only place a Moment is assembled; the instant is kept as is so the second
// occurrence of a folded wall-clock time is not re-resolved to the first.
func (c *Context) normalize(t time.Time) Moment {
	return Moment{t: t.In(c.loc), ctx: c}
}

// Datetime treats the fields as wall-clock time in the forced timezone.
func (c *Context) Datetime(year int, month time.Month, day, hour, minute, sec, nsec int) Moment {
	w := WallClock{Year: year, Month: month, Day: day, Hour: hour, Minute: minute, Second: sec, Nanosecond: nsec}
	check := c.CheckWallClock(w)
	if check.Skipped {
		c.log().Debug("event: wall-clock time skipped by DST transition",
			"requested", w.String(),
			"resolved", check.Resolved.Format(time.RFC3339Nano),
			"timezone", c.name)
	}
	if check.Ambiguous {
		c.log().Debug("event: wall-clock time is ambiguous due to DST transition",
			"requested", w.String(),
			"resolved", check.Resolved.Format(time.RFC3339Nano),
			"timezone", c.name)
	}
	return c.normalize(check.Resolved)
}

// DateAt returns midnight of the given date in the forced timezone.
func (c *Context) DateAt(year int, month time.Month, day int) Moment {
	return c.Datetime(year, month, day, 0, 0, 0, 0)
}

// Now returns the current instant in the forced timezone.
func (c *Context) Now() Moment {
	return c.normalize(c.now())
}

// New is the bare construction surface. Fields without a Location are
// rejected with ErrInstantiationDisabled; use Datetime, FromDatetime or
// FromAnyDatetime instead. Fields that carry a resolved Location come from a
// derived value and are normalized into the Context.
func (c *Context) New(f Fields) (Moment, error) {
	if f.Location == nil {
		return Moment{}, tzerrors.InstantiationDisabled(
			"direct instantiation disabled, use Datetime, DateAt, Now, FromDatetime, FromISOFormat or FromAnyDatetime").
			WithContext("timezone", c.name)
	}
	return c.normalize(f.WallClock.In(f.Location)), nil
}

// FromAnyDatetime normalizes any supported datetime value into the Context.
//
// Accepted inputs are Moment, *Moment, time.Time, *time.Time, WallClock and
// any Instant. WallClock input is read in the forced timezone; everything
// else keeps its absolute instant.
func (c *Context) FromAnyDatetime(v any) (Moment, error) {
	return c.fromAny(v, c.loc)
}

// FromDatetime normalizes an external datetime. Naive input (WallClock) is
// read in the AssumeTimezone option if given, else in the forced timezone.
// Aware input keeps its instant.
func (c *Context) FromDatetime(v any, opts ...NormalizeOption) (Moment, error) {
	switch v.(type) {
	case time.Time, *time.Time, Moment, *Moment, WallClock, *WallClock:
	default:
		return Moment{}, tzerrors.TypeMismatch(v)
	}

	assumed, err := c.assumedLocation(opts)
	if err != nil {
		return Moment{}, err
	}
	return c.fromAny(v, assumed)
}

func (c *Context) fromAny(v any, naiveLoc *time.Location) (Moment, error) {
	switch x := v.(type) {
	case Moment:
		if x.ctx == nil {
			return Moment{}, tzerrors.InstantiationDisabled("moment was not created through a context")
		}
		return c.normalize(x.t), nil
	case *Moment:
		if x == nil {
			return Moment{}, tzerrors.InvalidArgument("nil moment")
		}
		return c.fromAny(*x, naiveLoc)
	case time.Time:
		return c.normalize(x), nil
	case *time.Time:
		if x == nil {
			return Moment{}, tzerrors.InvalidArgument("nil time")
		}
		return c.normalize(*x), nil
	case WallClock:
		return c.normalize(x.In(naiveLoc)), nil
	case *WallClock:
		if x == nil {
			return Moment{}, tzerrors.InvalidArgument("nil wall clock")
		}
		return c.normalize(x.In(naiveLoc)), nil
	case Instant:
		return c.normalize(x.Time()), nil
	default:
		return Moment{}, tzerrors.TypeMismatch(v)
	}
}

func (c *Context) assumedLocation(opts []NormalizeOption) (*time.Location, error) {
	var o normalizeOptions
	for _, opt := range opts {
		opt(&o)
	}
	if o.assumeTimezone == "" {
		return c.loc, nil
	}
	return timezone.ParseTimezone(o.assumeTimezone)
}
