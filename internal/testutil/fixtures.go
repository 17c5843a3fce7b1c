package testutil

import (
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/google/uuid"
)

// Weekdays is Monday through Saturday, the default shop week.
var Weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday,
}

// Barber options
type BarberOption func(*domain.Barber)

func WithWorkingHours(start, end string, days ...time.Weekday) BarberOption {
	return func(b *domain.Barber) {
		b.WorkingHours = &domain.WorkingHours{
			Start: domain.MustClock(start),
			End:   domain.MustClock(end),
			Days:  days,
		}
	}
}

func WithoutWorkingHours() BarberOption {
	return func(b *domain.Barber) {
		b.WorkingHours = nil
	}
}

func WithBreak(start, end, label string, days ...time.Weekday) BarberOption {
	return func(b *domain.Barber) {
		b.Breaks = append(b.Breaks, domain.BreakTime{
			Start: domain.MustClock(start),
			End:   domain.MustClock(end),
			Days:  days,
			Label: label,
		})
	}
}

func WithSkills(tags ...string) BarberOption {
	return func(b *domain.Barber) {
		b.Skills = tags
	}
}

func Unavailable() BarberOption {
	return func(b *domain.Barber) {
		b.Available = false
	}
}

// NewTestBarber returns an available barber working 09:00-18:00, Monday to Saturday.
func NewTestBarber(name string, opts ...BarberOption) *domain.Barber {
	now := time.Now().UTC()
	b := &domain.Barber{
		ID:    uuid.New().String(),
		Name:  name,
		Email: name + "@example.com",
		WorkingHours: &domain.WorkingHours{
			Start: domain.MustClock("09:00"),
			End:   domain.MustClock("18:00"),
			Days:  append([]time.Weekday(nil), Weekdays...),
		},
		Available: true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Appointment options
type AppointmentOption func(*domain.Appointment)

func WithClient(name string) AppointmentOption {
	return func(a *domain.Appointment) {
		a.ClientName = name
	}
}

func WithClientID(id string) AppointmentOption {
	return func(a *domain.Appointment) {
		a.ClientID = id
	}
}

func WithService(name string) AppointmentOption {
	return func(a *domain.Appointment) {
		a.ServiceName = name
	}
}

func WithStatus(s domain.AppointmentStatus) AppointmentOption {
	return func(a *domain.Appointment) {
		a.Status = s
	}
}

func WithBuffers(before, after int) AppointmentOption {
	return func(a *domain.Appointment) {
		a.BufferBeforeMin = &before
		a.BufferAfterMin = &after
	}
}

func WithPriority(p int) AppointmentOption {
	return func(a *domain.Appointment) {
		a.Priority = &p
	}
}

func WithCreatedAt(t time.Time) AppointmentOption {
	return func(a *domain.Appointment) {
		a.CreatedAt = t
		a.UpdatedAt = t
	}
}

func NewTestAppointment(barberID string, start time.Time, durationMin int, opts ...AppointmentOption) *domain.Appointment {
	now := time.Now().UTC()
	a := &domain.Appointment{
		ID:          uuid.New().String(),
		StartTime:   start,
		DurationMin: durationMin,
		BarberID:    barberID,
		ClientName:  "Test Client",
		ServiceName: "Haircut",
		Status:      domain.StatusScheduled,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Client preference options
type ClientOption func(*domain.ClientPreferences)

func WithPreferredTimes(windows ...string) ClientOption {
	return func(p *domain.ClientPreferences) {
		p.PreferredTimes = mustWindows(windows)
	}
}

func WithAvoidTimes(windows ...string) ClientOption {
	return func(p *domain.ClientPreferences) {
		p.AvoidTimes = mustWindows(windows)
	}
}

func WithPreferredDays(days ...time.Weekday) ClientOption {
	return func(p *domain.ClientPreferences) {
		p.PreferredDays = days
	}
}

func WithFlexibility(f float64) ClientOption {
	return func(p *domain.ClientPreferences) {
		p.FlexibilityScore = f
	}
}

func WithReschedulingCount(n int) ClientOption {
	return func(p *domain.ClientPreferences) {
		p.ReschedulingCount = n
	}
}

func NewTestClientPreferences(clientID string, opts ...ClientOption) *domain.ClientPreferences {
	p := &domain.ClientPreferences{
		ClientID:         clientID,
		FlexibilityScore: 0.5,
		UpdatedAt:        time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func mustWindows(specs []string) []domain.TimeWindow {
	out := make([]domain.TimeWindow, 0, len(specs))
	for _, s := range specs {
		w, err := domain.ParseWindow(s)
		if err != nil {
			panic(err)
		}
		out = append(out, w)
	}
	return out
}

// At returns hh:mm on the calendar day of day, in day's location.
func At(day time.Time, h, m int) time.Time {
	return domain.StartOfDay(day).Add(time.Duration(h)*time.Hour + time.Duration(m)*time.Minute)
}

// NextWeekday returns midnight of the first wd strictly after from, in local time.
func NextWeekday(from time.Time, wd time.Weekday) time.Time {
	d := domain.StartOfDay(from.In(time.Local)).AddDate(0, 0, 1)
	for d.Weekday() != wd {
		d = d.AddDate(0, 0, 1)
	}
	return d
}
