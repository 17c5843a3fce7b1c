package conflict

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

const clockLayout = "15:04"

func checkAvailability(barber *domain.Barber) []Conflict {
	if barber.Available {
		return nil
	}
	return []Conflict{{
		Kind:                domain.ConflictBarberUnavailable,
		Severity:            domain.SeverityHigh,
		Description:         fmt.Sprintf("%s is marked unavailable", barber.Name),
		SuggestedResolution: "Reassign to an available barber",
	}}
}

// checkOverlaps reports every same-day booking sharing time with cand.
// Identical start times are left to checkDoubleBooking.
func checkOverlaps(cand domain.TimeRange, sameDay []domain.Appointment) []Conflict {
	var out []Conflict
	for _, a := range sameDay {
		if a.StartTime.Equal(cand.Start) {
			continue
		}
		other := a.Range()
		if !cand.Overlaps(other) {
			continue
		}
		minutes := cand.OverlapMinutes(other)
		out = append(out, Conflict{
			Kind:     domain.ConflictTimeOverlap,
			Severity: overlapSeverity(minutes),
			Description: fmt.Sprintf("Overlaps %s (%s %s-%s) by %d minutes",
				a.ClientName, a.ServiceName,
				other.Start.Format(clockLayout), other.End.Format(clockLayout), minutes),
			ConflictingAppointmentIDs: []string{a.ID},
			SuggestedResolution:       "Move to a free slot or shorten the service",
		})
	}
	return out
}

func overlapSeverity(minutes int) domain.Severity {
	switch {
	case minutes >= 30:
		return domain.SeverityHigh
	case minutes > 15:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func checkWorkingHours(barber *domain.Barber, cand domain.TimeRange) []Conflict {
	wh := barber.WorkingHours
	if wh == nil {
		return nil
	}
	if !domain.ContainsWeekday(wh.Days, cand.Start.Weekday()) {
		return []Conflict{{
			Kind:                domain.ConflictWorkingHours,
			Severity:            domain.SeverityHigh,
			Description:         fmt.Sprintf("%s does not work on %s", barber.Name, cand.Start.Weekday()),
			SuggestedResolution: "Reschedule to one of the barber's working days",
		}}
	}
	if !wh.Covers(cand) {
		return []Conflict{{
			Kind:     domain.ConflictWorkingHours,
			Severity: domain.SeverityHigh,
			Description: fmt.Sprintf("%s-%s falls outside %s's hours (%s)",
				cand.Start.Format(clockLayout), cand.End.Format(clockLayout), barber.Name, wh.Window()),
			SuggestedResolution: "Reschedule inside working hours",
		}}
	}
	return nil
}

func checkBreaks(barber *domain.Barber, cand domain.TimeRange) []Conflict {
	var out []Conflict
	for _, br := range barber.Breaks {
		if !br.AppliesOn(cand.Start) {
			continue
		}
		r := br.RangeOn(cand.Start)
		if !cand.Overlaps(r) {
			continue
		}
		label := domain.CoalesceStr(br.Label, "break")
		out = append(out, Conflict{
			Kind:     domain.ConflictBreakTime,
			Severity: domain.SeverityMedium,
			Description: fmt.Sprintf("Runs into %s's %s (%s-%s)",
				barber.Name, label, br.Start, br.End),
			SuggestedResolution: "Move the appointment clear of the break",
		})
	}
	return out
}

// checkBuffers flags same-day bookings that end less than the required buffer
// before cand starts, or start less than the buffer after cand ends. Each
// violation carries the nearest start time that restores the buffer.
func (e *Engine) checkBuffers(cand *domain.Appointment, sameDay []domain.Appointment) []Conflict {
	var out []Conflict
	start, end := cand.StartTime, cand.End()
	duration := end.Sub(start)
	for _, a := range sameDay {
		need := e.bufferBetween(&a, cand)
		if gap := start.Sub(a.End()); need > 0 && gap >= 0 && gap < need {
			suggested := a.End().Add(need)
			out = append(out, Conflict{
				Kind:     domain.ConflictInsufficientBuf,
				Severity: domain.SeverityLow,
				Description: fmt.Sprintf("Only %d minutes after %s's appointment ends at %s (need %d)",
					int(gap.Minutes()), a.ClientName, a.End().Format(clockLayout), int(need.Minutes())),
				ConflictingAppointmentIDs: []string{a.ID},
				SuggestedResolution:       fmt.Sprintf("Start at %s", suggested.Format(clockLayout)),
				SuggestedTime:             &suggested,
			})
		}
		need = e.bufferBetween(cand, &a)
		if gap := a.StartTime.Sub(end); need > 0 && gap >= 0 && gap < need {
			suggested := a.StartTime.Add(-need).Add(-duration)
			out = append(out, Conflict{
				Kind:     domain.ConflictInsufficientBuf,
				Severity: domain.SeverityLow,
				Description: fmt.Sprintf("Only %d minutes before %s's appointment at %s (need %d)",
					int(gap.Minutes()), a.ClientName, a.StartTime.Format(clockLayout), int(need.Minutes())),
				ConflictingAppointmentIDs: []string{a.ID},
				SuggestedResolution:       fmt.Sprintf("Start at %s", suggested.Format(clockLayout)),
				SuggestedTime:             &suggested,
			})
		}
	}
	return out
}

// bufferBetween returns the idle time required between first ending and
// second starting.
func (e *Engine) bufferBetween(first, second *domain.Appointment) time.Duration {
	need := domain.ValueOr(0, first.BufferAfterMin)
	if b := domain.ValueOr(0, second.BufferBeforeMin); b > need {
		need = b
	}
	if e.opts.BufferMin > need {
		need = e.opts.BufferMin
	}
	return time.Duration(need) * time.Minute
}

func checkDoubleBooking(cand domain.TimeRange, sameDay []domain.Appointment) []Conflict {
	var out []Conflict
	for _, a := range sameDay {
		if !a.StartTime.Equal(cand.Start) {
			continue
		}
		out = append(out, Conflict{
			Kind:                      domain.ConflictDoubleBooking,
			Severity:                  domain.SeverityCritical,
			Description:               fmt.Sprintf("%s already has %s booked at %s", a.BarberID, a.ClientName, a.StartTime.Format(clockLayout)),
			ConflictingAppointmentIDs: []string{a.ID},
			SuggestedResolution:       "Pick another time or barber",
		})
	}
	return out
}
