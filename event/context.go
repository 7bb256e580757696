package event

import (
	"log/slog"
	"time"

	"github.com/hrygo/eventtz/timezone"
)

// Context binds Moments to one forced timezone.
//
// The forced timezone is fixed at creation. Label is a display label only:
// changing it never changes Name or the zone of any Moment. Apart from
// writes to Label, a Context is safe for concurrent use.
type Context struct {
	// Label is shown by String. It defaults to the canonical timezone name.
	// Writes to Label are not synchronized: set it (or use WithLabel) before
	// the Context is shared between goroutines.
	Label string

	name   string
	loc    *time.Location
	clock  func() time.Time
	logger *slog.Logger
}

// Option is a function that configures a Context.
type Option func(*Context)

// WithClock sets the clock used by Now and DiffForHumans.
func WithClock(clock func() time.Time) Option {
	return func(c *Context) {
		if clock != nil {
			c.clock = clock
		}
	}
}

// WithLogger sets the logger used for DST resolution diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithLabel sets the initial display label.
func WithLabel(label string) Option {
	return func(c *Context) {
		c.Label = label
	}
}

// CreateContext validates timezoneName against the timezone database and
// returns a new Context forced to its canonical name.
//
// Every call returns a distinct Context, even for the same name. Compare
// contexts with SameZone or Name rather than by pointer.
func CreateContext(timezoneName string, opts ...Option) (*Context, error) {
	name, loc, err := timezone.Resolve(timezoneName)
	if err != nil {
		return nil, err
	}

	c := &Context{
		Label: name,
		name:  name,
		loc:   loc,
		clock: time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// MustCreateContext is like CreateContext but panics if the name does not resolve.
func MustCreateContext(timezoneName string, opts ...Option) *Context {
	c, err := CreateContext(timezoneName, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Name returns the canonical forced timezone name.
func (c *Context) Name() string {
	return c.name
}

// Location returns the forced timezone location.
func (c *Context) Location() *time.Location {
	return c.loc
}

// SameZone reports whether both contexts force the same canonical timezone.
func (c *Context) SameZone(other *Context) bool {
	if c == nil || other == nil {
		return c == other
	}
	return c.name == other.name
}

// String returns the display label.
func (c *Context) String() string {
	if c.Label == "" {
		return "Event[" + c.name + "]"
	}
	return "Event[" + c.Label + "]"
}

func (c *Context) now() time.Time {
	return c.clock()
}

func (c *Context) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return slog.Default()
}
