package domain

import (
	"fmt"
	"time"
)

type WorkingHours struct {
	Start ClockTime
	End   ClockTime
	Days  []time.Weekday
}

// Window returns the daily working window.
func (w WorkingHours) Window() TimeWindow {
	return TimeWindow{Start: w.Start, End: w.End}
}

// Covers reports whether r lies entirely inside working hours on an active day.
func (w WorkingHours) Covers(r TimeRange) bool {
	if !ContainsWeekday(w.Days, r.Start.Weekday()) {
		return false
	}
	win := w.Window().Range(r.Start)
	return !r.Start.Before(win.Start) && !r.End.After(win.End)
}

// BreakTime is a recurring (Days, empty meaning every day) or one-off (Date)
// interval during which the barber takes no clients.
type BreakTime struct {
	Start ClockTime
	End   ClockTime
	Days  []time.Weekday
	Date  *time.Time
	Label string
}

// AppliesOn reports whether the break is in effect on day's calendar date.
func (b BreakTime) AppliesOn(day time.Time) bool {
	if b.Date != nil {
		return SameDay(day, *b.Date)
	}
	if len(b.Days) == 0 {
		return true
	}
	return ContainsWeekday(b.Days, day.Weekday())
}

// RangeOn materialises the break on day's calendar date.
func (b BreakTime) RangeOn(day time.Time) TimeRange {
	return TimeWindow{Start: b.Start, End: b.End}.Range(day)
}

type Barber struct {
	ID           string
	Name         string
	Email        string
	WorkingHours *WorkingHours
	Breaks       []BreakTime
	Skills       []string
	Available    bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultWorkday is assumed for utilization when a barber has no working hours.
var DefaultWorkday = TimeWindow{Start: 9 * 60, End: 17 * 60}

// WorkdayMinutes returns the length of the barber's working day.
func (b *Barber) WorkdayMinutes() int {
	if b.WorkingHours == nil {
		return DefaultWorkday.Minutes()
	}
	return b.WorkingHours.Window().Minutes()
}

// HasSkill reports whether the barber carries the given tag.
func (b *Barber) HasSkill(tag string) bool {
	for _, s := range b.Skills {
		if s == tag {
			return true
		}
	}
	return false
}

func (b *Barber) Validate() error {
	if b.Name == "" {
		return fmt.Errorf("barber name is required")
	}
	if wh := b.WorkingHours; wh != nil {
		if wh.End <= wh.Start {
			return fmt.Errorf("working hours must end after they start (%s-%s)", wh.Start, wh.End)
		}
		if len(wh.Days) == 0 {
			return fmt.Errorf("working hours need at least one active day")
		}
	}
	for i, br := range b.Breaks {
		if br.End <= br.Start {
			return fmt.Errorf("break %d must end after it starts (%s-%s)", i, br.Start, br.End)
		}
	}
	return nil
}

// FindBarber returns the barber with the given id, or nil.
func FindBarber(barbers []Barber, id string) *Barber {
	for i := range barbers {
		if barbers[i].ID == id {
			return &barbers[i]
		}
	}
	return nil
}
