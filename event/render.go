package event

import (
	"github.com/dustin/go-humanize"
	"github.com/ncruces/go-strftime"
)

// Format renders m with a Go reference layout, e.g. "Monday, 2 January 2006 at 15:04".
func (m Moment) Format(layout string) string {
	return m.t.Format(layout)
}

// Strftime renders m with a C strftime pattern, e.g. "%A, %d %B %Y @ %H:%M".
func (m Moment) Strftime(pattern string) string {
	return strftime.Format(pattern, m.t)
}

// DiffForHumans describes m relative to the Context clock, e.g. "2 years ago".
func (m Moment) DiffForHumans() string {
	if m.ctx == nil {
		return humanize.Time(m.t)
	}
	return humanize.RelTime(m.t, m.ctx.now(), "ago", "from now")
}

// DiffForHumansFrom describes m relative to other, e.g. "3 hours before".
func (m Moment) DiffForHumansFrom(other Moment) string {
	return humanize.RelTime(m.t, other.t, "before", "after")
}
