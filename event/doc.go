// Package event provides timezone-locked datetime values.
//
// A Context is bound to one IANA timezone when it is created. Every Moment
// produced through a Context is expressed in that timezone's wall clock, no
// matter how the input was shaped: wall-clock fields, an aware time.Time in
// another zone, or an ISO-8601 string. Moments from different Contexts still
// compare by absolute instant, and Convert re-expresses a Moment in another
// Context without moving the instant.
//
// Example usage:
//
//	london := event.MustCreateContext("Europe/London")
//	newYork := event.MustCreateContext("America/New_York")
//
//	meeting := london.Datetime(2025, time.June, 1, 14, 0, 0, 0)
//	inNY, _ := meeting.Convert(newYork) // 09:00 America/New_York
//	meeting.Equal(inNY)                 // true
//
// Calendar arithmetic and rendering are delegated to the time package,
// github.com/ncruces/go-strftime and github.com/dustin/go-humanize.
package event
