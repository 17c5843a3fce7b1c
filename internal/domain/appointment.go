package domain

import (
	"fmt"
	"time"
)

type Appointment struct {
	ID              string
	StartTime       time.Time
	EndTime         *time.Time
	DurationMin     int
	BarberID        string
	ClientID        string
	ClientName      string
	ServiceName     string
	Status          AppointmentStatus
	BufferBeforeMin *int
	BufferAfterMin  *int
	Priority        *int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// End returns the explicit end time when set, otherwise start + duration.
func (a *Appointment) End() time.Time {
	if a.EndTime != nil {
		return *a.EndTime
	}
	return a.StartTime.Add(time.Duration(a.DurationMin) * time.Minute)
}

// Range returns the [start, end) interval the appointment occupies.
func (a *Appointment) Range() TimeRange {
	return TimeRange{Start: a.StartTime, End: a.End()}
}

// ClientKey identifies the client for preference lookups. The display name is
// used when no explicit client id was recorded.
func (a *Appointment) ClientKey() string {
	return CoalesceStr(a.ClientID, a.ClientName)
}

// Validate checks the structural invariants of an appointment.
func (a *Appointment) Validate() error {
	if a.BarberID == "" {
		return fmt.Errorf("appointment barber is required")
	}
	if a.DurationMin <= 0 {
		return fmt.Errorf("appointment duration must be positive, got %d", a.DurationMin)
	}
	if a.StartTime.IsZero() {
		return fmt.Errorf("appointment start time is required")
	}
	if a.EndTime != nil {
		want := a.StartTime.Add(time.Duration(a.DurationMin) * time.Minute)
		if !a.EndTime.Equal(want) {
			return fmt.Errorf("appointment end %s does not match start + %d minutes",
				a.EndTime.Format(time.RFC3339), a.DurationMin)
		}
	}
	if a.Status != "" && !ValidAppointmentStatuses[string(a.Status)] {
		return fmt.Errorf("invalid appointment status %q", a.Status)
	}
	if a.BufferBeforeMin != nil && *a.BufferBeforeMin < 0 {
		return fmt.Errorf("buffer before must not be negative")
	}
	if a.BufferAfterMin != nil && *a.BufferAfterMin < 0 {
		return fmt.Errorf("buffer after must not be negative")
	}
	return nil
}

// MoveTo returns a copy rescheduled to start with the given barber and
// duration. An explicit end time is recomputed so the invariant still holds.
func (a Appointment) MoveTo(start time.Time, barberID string, durationMin int) Appointment {
	a.StartTime = start
	a.BarberID = barberID
	a.DurationMin = durationMin
	if a.EndTime != nil {
		end := start.Add(time.Duration(durationMin) * time.Minute)
		a.EndTime = &end
	}
	return a
}
