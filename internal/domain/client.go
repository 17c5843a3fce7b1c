package domain

import (
	"fmt"
	"time"
)

type ClientPreferences struct {
	ClientID          string
	PreferredTimes    []TimeWindow
	AvoidTimes        []TimeWindow
	PreferredDays     []time.Weekday
	FlexibilityScore  float64
	ReschedulingCount int
	UpdatedAt         time.Time
}

func (p *ClientPreferences) Validate() error {
	if p.ClientID == "" {
		return fmt.Errorf("client id is required")
	}
	if p.FlexibilityScore < 0 || p.FlexibilityScore > 1 {
		return fmt.Errorf("flexibility must be between 0 and 1, got %.2f", p.FlexibilityScore)
	}
	if p.ReschedulingCount < 0 {
		return fmt.Errorf("rescheduling count must not be negative")
	}
	return nil
}

// PrefersTime reports whether c falls in any preferred window.
func (p *ClientPreferences) PrefersTime(c ClockTime) bool {
	return anyWindowContains(p.PreferredTimes, c)
}

// AvoidsTime reports whether c falls in any avoid window.
func (p *ClientPreferences) AvoidsTime(c ClockTime) bool {
	return anyWindowContains(p.AvoidTimes, c)
}

// PrefersDay reports whether d is one of the preferred weekdays.
func (p *ClientPreferences) PrefersDay(d time.Weekday) bool {
	return ContainsWeekday(p.PreferredDays, d)
}

func anyWindowContains(windows []TimeWindow, c ClockTime) bool {
	for _, w := range windows {
		if w.Contains(c) {
			return true
		}
	}
	return false
}
