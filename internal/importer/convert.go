package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/google/uuid"
)

// Snapshot is a converted import, ready for persistence.
type Snapshot struct {
	Barbers      []*domain.Barber
	Appointments []*domain.Appointment
	Clients      []*domain.ClientPreferences
	Rules        *domain.BusinessRulesPatch
	// RefMap maps file refs to generated barber ids.
	RefMap map[string]string
}

// Convert transforms a validated ImportSchema into domain objects.
// Call ValidateImportSchema first; Convert assumes the schema is valid.
func Convert(schema *ImportSchema) (*Snapshot, error) {
	now := time.Now().UTC()
	snap := &Snapshot{RefMap: make(map[string]string)}

	for _, b := range schema.Barbers {
		barber, err := convertBarber(b, now)
		if err != nil {
			return nil, fmt.Errorf("barber %q: %w", b.Ref, err)
		}
		snap.RefMap[b.Ref] = barber.ID
		snap.Barbers = append(snap.Barbers, barber)
	}

	for i, a := range schema.Appointments {
		barberID, ok := snap.RefMap[a.BarberRef]
		if !ok {
			return nil, fmt.Errorf("barber_ref %q not found for appointment %d", a.BarberRef, i)
		}
		start, err := ParseInstant(a.Start)
		if err != nil {
			return nil, fmt.Errorf("appointment %d: %w", i, err)
		}
		appt := &domain.Appointment{
			ID:              uuid.New().String(),
			StartTime:       start,
			DurationMin:     a.DurationMin,
			BarberID:        barberID,
			ClientID:        a.ClientID,
			ClientName:      domain.CoalesceStr(a.Client, a.ClientID),
			ServiceName:     a.Service,
			Status:          domain.AppointmentStatus(domain.CoalesceStr(a.Status, string(domain.StatusScheduled))),
			BufferBeforeMin: a.BufferBeforeMin,
			BufferAfterMin:  a.BufferAfterMin,
			Priority:        a.Priority,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
		snap.Appointments = append(snap.Appointments, appt)
	}

	for _, c := range schema.Clients {
		prefs, err := convertClient(c, now)
		if err != nil {
			return nil, fmt.Errorf("client %q: %w", c.ClientID, err)
		}
		snap.Clients = append(snap.Clients, prefs)
	}

	if schema.Rules != nil {
		patch, err := convertRules(schema.Rules)
		if err != nil {
			return nil, err
		}
		snap.Rules = patch
	}

	return snap, nil
}

func convertBarber(b BarberImport, now time.Time) (*domain.Barber, error) {
	barber := &domain.Barber{
		ID:        uuid.New().String(),
		Name:      b.Name,
		Email:     b.Email,
		Skills:    b.Skills,
		Available: domain.ValueOr(true, b.Available),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if wh := b.WorkingHours; wh != nil {
		days, err := domain.ParseWeekdays(wh.Days)
		if err != nil {
			return nil, err
		}
		barber.WorkingHours = &domain.WorkingHours{
			Start: domain.MustClock(wh.Start),
			End:   domain.MustClock(wh.End),
			Days:  days,
		}
	}

	for _, br := range b.Breaks {
		days, err := domain.ParseWeekdays(br.Days)
		if err != nil {
			return nil, err
		}
		bt := domain.BreakTime{
			Start: domain.MustClock(br.Start),
			End:   domain.MustClock(br.End),
			Days:  days,
			Label: br.Label,
		}
		if br.Date != nil {
			d, err := time.ParseInLocation(dateLayout, *br.Date, time.Local)
			if err != nil {
				return nil, err
			}
			bt.Date = &d
		}
		barber.Breaks = append(barber.Breaks, bt)
	}

	return barber, barber.Validate()
}

func convertClient(c ClientImport, now time.Time) (*domain.ClientPreferences, error) {
	preferred, err := parseWindows(c.PreferredTimes)
	if err != nil {
		return nil, err
	}
	avoid, err := parseWindows(c.AvoidTimes)
	if err != nil {
		return nil, err
	}
	days, err := domain.ParseWeekdays(c.PreferredDays)
	if err != nil {
		return nil, err
	}
	return &domain.ClientPreferences{
		ClientID:          c.ClientID,
		PreferredTimes:    preferred,
		AvoidTimes:        avoid,
		PreferredDays:     days,
		FlexibilityScore:  domain.ValueOr(0.5, c.Flexibility),
		ReschedulingCount: c.ReschedulingCount,
		UpdatedAt:         now,
	}, nil
}

func convertRules(r *RulesImport) (*domain.BusinessRulesPatch, error) {
	patch := &domain.BusinessRulesPatch{
		MinimumNoticeHours:        r.MinimumNoticeHours,
		MaxReschedulingsPerClient: r.MaxReschedulingsPerClient,
		TargetUtilizationPct:      r.TargetUtilizationPct,
		AllowWeekendScheduling:    r.AllowWeekendScheduling,
	}
	if r.PeakHours != nil {
		peak, err := parseWindows(r.PeakHours)
		if err != nil {
			return nil, fmt.Errorf("rules.peak_hours: %w", err)
		}
		patch.PeakHours = &peak
	}
	return patch, nil
}

func parseWindows(specs []string) ([]domain.TimeWindow, error) {
	out := make([]domain.TimeWindow, 0, len(specs))
	for _, s := range specs {
		w, err := domain.ParseWindow(s)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}
