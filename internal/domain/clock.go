package domain

import (
	"fmt"
	"strings"
	"time"
)

// ClockTime is a wall-clock time of day expressed in minutes after midnight.
// 24:00 (1440) is allowed as an end bound.
type ClockTime int

const MinutesPerDay = 24 * 60

// ParseClock parses "HH:MM".
func ParseClock(s string) (ClockTime, error) {
	var h, m int
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid clock time %q (expected HH:MM)", s)
	}
	if h < 0 || m < 0 || m > 59 || h > 24 || (h == 24 && m != 0) {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}
	return ClockTime(h*60 + m), nil
}

// MustClock is ParseClock for literals known to be valid.
func MustClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// On returns the instant at this clock time on the calendar day of ref,
// in ref's location. The wall clock is kept across DST changes; 24:00 is
// the following midnight.
func (c ClockTime) On(ref time.Time) time.Time {
	y, m, d := ref.Date()
	return time.Date(y, m, d, int(c)/60, int(c)%60, 0, 0, ref.Location())
}

// ClockOf returns the clock time of t in its own location.
func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	b = b.In(a.Location())
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// TimeWindow is a half-open clock interval [Start, End).
type TimeWindow struct {
	Start ClockTime
	End   ClockTime
}

// ParseWindow parses "HH:MM-HH:MM".
func ParseWindow(s string) (TimeWindow, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 2 {
		return TimeWindow{}, fmt.Errorf("invalid window %q (expected HH:MM-HH:MM)", s)
	}
	start, err := ParseClock(parts[0])
	if err != nil {
		return TimeWindow{}, err
	}
	end, err := ParseClock(parts[1])
	if err != nil {
		return TimeWindow{}, err
	}
	if end <= start {
		return TimeWindow{}, fmt.Errorf("window %q must end after it starts", s)
	}
	return TimeWindow{Start: start, End: end}, nil
}

func (w TimeWindow) String() string {
	return w.Start.String() + "-" + w.End.String()
}

// Contains reports whether c lies inside the window.
func (w TimeWindow) Contains(c ClockTime) bool {
	return c >= w.Start && c < w.End
}

// Minutes returns the window length.
func (w TimeWindow) Minutes() int {
	return int(w.End - w.Start)
}

// Range materialises the window on ref's calendar day.
func (w TimeWindow) Range(ref time.Time) TimeRange {
	return TimeRange{Start: w.Start.On(ref), End: w.End.On(ref)}
}

// TimeRange is a half-open instant interval [Start, End).
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Overlaps checks if two time ranges overlap.
func (t TimeRange) Overlaps(other TimeRange) bool {
	return t.Start.Before(other.End) && other.Start.Before(t.End)
}

// OverlapMinutes returns how many whole minutes the two ranges share.
func (t TimeRange) OverlapMinutes(other TimeRange) int {
	if !t.Overlaps(other) {
		return 0
	}
	start := t.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := t.End
	if other.End.Before(end) {
		end = other.End
	}
	return int(end.Sub(start).Minutes())
}

// Minutes returns the duration of the time range in minutes.
func (t TimeRange) Minutes() int {
	return int(t.End.Sub(t.Start).Minutes())
}

var weekdayNames = map[string]time.Weekday{
	"sun": time.Sunday, "mon": time.Monday, "tue": time.Tuesday, "wed": time.Wednesday,
	"thu": time.Thursday, "fri": time.Friday, "sat": time.Saturday,
}

// ParseWeekday accepts three-letter or full English weekday names.
func ParseWeekday(s string) (time.Weekday, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if len(key) > 3 {
		key = key[:3]
	}
	d, ok := weekdayNames[key]
	if !ok {
		return 0, fmt.Errorf("invalid weekday %q", s)
	}
	return d, nil
}

// ParseWeekdays parses a list of weekday names.
func ParseWeekdays(names []string) ([]time.Weekday, error) {
	days := make([]time.Weekday, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			continue
		}
		d, err := ParseWeekday(n)
		if err != nil {
			return nil, err
		}
		days = append(days, d)
	}
	return days, nil
}

// WeekdayAbbrev returns the lowercase three-letter name used in files and flags.
func WeekdayAbbrev(d time.Weekday) string {
	return strings.ToLower(d.String()[:3])
}

// ContainsWeekday reports whether d is in days.
func ContainsWeekday(days []time.Weekday, d time.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

// IsWeekend reports whether t falls on Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
