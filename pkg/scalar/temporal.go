package scalar

import (
	"encoding/json"
	"fmt"
	"time"
)

// Date is a calendar day without a time zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func (d Date) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d Date) MarshalYAML() (any, error) { return d.String(), nil }

// Clock is a time of day without a date.
type Clock struct {
	Hour, Minute, Second int
	Nanosecond           int
}

// ClockOf returns the time of day of t.
func ClockOf(t time.Time) Clock {
	return Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(), Nanosecond: t.Nanosecond()}
}

// String formats the clock as HH:MM:SS with microseconds when present.
func (c Clock) String() string {
	s := fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	if us := c.Nanosecond / 1000; us > 0 {
		s += fmt.Sprintf(".%06d", us)
	}
	return s
}

func (c Clock) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

func (c Clock) MarshalYAML() (any, error) { return c.String(), nil }

// Timestamp formats t as ISO-8601. Zone offsets are kept, UTC uses "Z".
func Timestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}
