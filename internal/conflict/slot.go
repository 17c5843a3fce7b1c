package conflict

import (
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

// IsSlotAvailable reports whether barber can take a durationMin booking at
// start under exactly the rules Analyze enforces: no overlap or shared start
// with a same-day booking, buffers kept unless back-to-back is allowed, and
// working hours and breaks respected when configured. excludeID names a
// booking to ignore, normally the one being moved.
func (e *Engine) IsSlotAvailable(barber *domain.Barber, start time.Time, durationMin int, existing []domain.Appointment, excludeID string) bool {
	cand := domain.Appointment{
		ID:          excludeID,
		BarberID:    barber.ID,
		StartTime:   start,
		DurationMin: durationMin,
	}
	return e.slotFree(barber, &cand, existing)
}

// slotFree is IsSlotAvailable for a fully specified appointment, so per-booking
// buffer fields of the appointment being moved are honoured too.
func (e *Engine) slotFree(barber *domain.Barber, cand *domain.Appointment, existing []domain.Appointment) bool {
	r := cand.Range()
	start := cand.StartTime
	for _, a := range e.sameDayBookings(barber.ID, start, existing, cand.ID) {
		if r.Overlaps(a.Range()) || a.StartTime.Equal(start) {
			return false
		}
		if !e.opts.AllowBackToBack && e.violatesBuffer(cand, &a) {
			return false
		}
	}
	if e.opts.RespectWorkingHours && barber.WorkingHours != nil && !barber.WorkingHours.Covers(r) {
		return false
	}
	if e.opts.RespectBreaks {
		for _, br := range barber.Breaks {
			if br.AppliesOn(start) && r.Overlaps(br.RangeOn(start)) {
				return false
			}
		}
	}
	return true
}

func (e *Engine) violatesBuffer(cand, other *domain.Appointment) bool {
	if need := e.bufferBetween(other, cand); need > 0 {
		if gap := cand.StartTime.Sub(other.End()); gap >= 0 && gap < need {
			return true
		}
	}
	if need := e.bufferBetween(cand, other); need > 0 {
		if gap := other.StartTime.Sub(cand.End()); gap >= 0 && gap < need {
			return true
		}
	}
	return false
}

// Collides reports whether a booking of moved would overlap or crowd other
// under the engine's buffer rules. Used for cascade detection.
func (e *Engine) Collides(moved, other *domain.Appointment) bool {
	if moved.BarberID != other.BarberID || !other.Status.Blocking() {
		return false
	}
	if moved.Range().Overlaps(other.Range()) || moved.StartTime.Equal(other.StartTime) {
		return true
	}
	return !e.opts.AllowBackToBack && e.violatesBuffer(moved, other)
}

// nearestSlot searches outward from start in slot steps, trying the later
// slot first at each distance, and returns the first free start within the
// rescheduling range that keeps the booking inside the calendar day.
func (e *Engine) nearestSlot(barber *domain.Barber, cand *domain.Appointment, existing []domain.Appointment) (time.Time, int, bool) {
	start := cand.StartTime
	duration := cand.Range().Minutes()
	dayStart := domain.StartOfDay(start)
	dayEnd := dayStart.AddDate(0, 0, 1)
	step := e.opts.SlotStepMin

	for diff := step; diff <= e.opts.MaxReschedulingRangeMin; diff += step {
		for _, sign := range [2]int{1, -1} {
			t := start.Add(time.Duration(sign*diff) * time.Minute)
			if t.Before(dayStart) || t.Add(time.Duration(duration)*time.Minute).After(dayEnd) {
				continue
			}
			trial := cand.MoveTo(t, barber.ID, duration)
			if e.slotFree(barber, &trial, existing) {
				return t, diff, true
			}
		}
	}
	return time.Time{}, 0, false
}
