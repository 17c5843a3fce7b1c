package importer

import (
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

const (
	dateLayout      = "2006-01-02"
	localTimeLayout = "2006-01-02 15:04"
)

// ValidateImportSchema checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateImportSchema(schema *ImportSchema) []error {
	var errs []error

	barberRefs := make(map[string]bool)
	errs = append(errs, validateBarbers(schema.Barbers, barberRefs)...)
	errs = append(errs, validateAppointments(schema.Appointments, barberRefs)...)
	errs = append(errs, validateClients(schema.Clients)...)
	errs = append(errs, validateRules(schema.Rules)...)

	return errs
}

func validateBarbers(barbers []BarberImport, refs map[string]bool) []error {
	var errs []error

	for i, b := range barbers {
		prefix := fmt.Sprintf("barbers[%d]", i)

		if b.Ref == "" {
			errs = append(errs, fmt.Errorf("%s.ref is required", prefix))
		} else if refs[b.Ref] {
			errs = append(errs, fmt.Errorf("%s.ref: duplicate ref %q", prefix, b.Ref))
		} else {
			refs[b.Ref] = true
		}
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("%s.name is required", prefix))
		}

		if wh := b.WorkingHours; wh != nil {
			errs = append(errs, validateClockPair(prefix+".working_hours", wh.Start, wh.End)...)
			if len(wh.Days) == 0 {
				errs = append(errs, fmt.Errorf("%s.working_hours.days: at least one day is required", prefix))
			}
			errs = append(errs, validateWeekdays(prefix+".working_hours.days", wh.Days)...)
		}

		for j, br := range b.Breaks {
			bp := fmt.Sprintf("%s.breaks[%d]", prefix, j)
			errs = append(errs, validateClockPair(bp, br.Start, br.End)...)
			errs = append(errs, validateWeekdays(bp+".days", br.Days)...)
			if br.Date != nil {
				if _, err := time.Parse(dateLayout, *br.Date); err != nil {
					errs = append(errs, fmt.Errorf("%s.date: invalid date format %q (expected YYYY-MM-DD)", bp, *br.Date))
				}
			}
		}
	}

	return errs
}

func validateAppointments(appts []AppointmentImport, barberRefs map[string]bool) []error {
	var errs []error

	for i, a := range appts {
		prefix := fmt.Sprintf("appointments[%d]", i)

		if a.BarberRef == "" {
			errs = append(errs, fmt.Errorf("%s.barber_ref is required", prefix))
		} else if !barberRefs[a.BarberRef] {
			errs = append(errs, fmt.Errorf("%s.barber_ref: ref %q not found", prefix, a.BarberRef))
		}
		if a.Client == "" && a.ClientID == "" {
			errs = append(errs, fmt.Errorf("%s.client is required", prefix))
		}
		if a.DurationMin <= 0 {
			errs = append(errs, fmt.Errorf("%s.duration_min must be positive", prefix))
		}
		if a.Status != "" && !domain.ValidAppointmentStatuses[a.Status] {
			errs = append(errs, fmt.Errorf("%s.status: invalid value %q", prefix, a.Status))
		}
		if a.BufferBeforeMin != nil && *a.BufferBeforeMin < 0 {
			errs = append(errs, fmt.Errorf("%s.buffer_before_min must not be negative", prefix))
		}
		if a.BufferAfterMin != nil && *a.BufferAfterMin < 0 {
			errs = append(errs, fmt.Errorf("%s.buffer_after_min must not be negative", prefix))
		}

		start, err := ParseInstant(a.Start)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s.start: %w", prefix, err))
			continue
		}
		if a.End != nil {
			end, err := ParseInstant(*a.End)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s.end: %w", prefix, err))
			} else if a.DurationMin > 0 && !end.Equal(start.Add(time.Duration(a.DurationMin)*time.Minute)) {
				errs = append(errs, fmt.Errorf("%s.end %q does not match start + %d minutes", prefix, *a.End, a.DurationMin))
			}
		}
	}

	return errs
}

func validateClients(clients []ClientImport) []error {
	var errs []error
	seen := make(map[string]bool)

	for i, c := range clients {
		prefix := fmt.Sprintf("clients[%d]", i)

		if c.ClientID == "" {
			errs = append(errs, fmt.Errorf("%s.client_id is required", prefix))
		} else if seen[c.ClientID] {
			errs = append(errs, fmt.Errorf("%s.client_id: duplicate client %q", prefix, c.ClientID))
		} else {
			seen[c.ClientID] = true
		}
		errs = append(errs, validateWindows(prefix+".preferred_times", c.PreferredTimes)...)
		errs = append(errs, validateWindows(prefix+".avoid_times", c.AvoidTimes)...)
		errs = append(errs, validateWeekdays(prefix+".preferred_days", c.PreferredDays)...)
		if c.Flexibility != nil && (*c.Flexibility < 0 || *c.Flexibility > 1) {
			errs = append(errs, fmt.Errorf("%s.flexibility must be between 0 and 1", prefix))
		}
		if c.ReschedulingCount < 0 {
			errs = append(errs, fmt.Errorf("%s.rescheduling_count must not be negative", prefix))
		}
	}

	return errs
}

func validateRules(r *RulesImport) []error {
	if r == nil {
		return nil
	}
	var errs []error

	errs = append(errs, validateWindows("rules.peak_hours", r.PeakHours)...)
	if r.MinimumNoticeHours != nil && *r.MinimumNoticeHours < 0 {
		errs = append(errs, fmt.Errorf("rules.minimum_notice_hours must not be negative"))
	}
	if r.MaxReschedulingsPerClient != nil && *r.MaxReschedulingsPerClient < 0 {
		errs = append(errs, fmt.Errorf("rules.max_reschedulings_per_client must not be negative"))
	}
	if r.TargetUtilizationPct != nil && (*r.TargetUtilizationPct < 0 || *r.TargetUtilizationPct > 100) {
		errs = append(errs, fmt.Errorf("rules.target_utilization_pct must be between 0 and 100"))
	}

	return errs
}

func validateClockPair(prefix, start, end string) []error {
	var errs []error
	s, startErr := domain.ParseClock(start)
	if startErr != nil {
		errs = append(errs, fmt.Errorf("%s.start: %w", prefix, startErr))
	}
	e, endErr := domain.ParseClock(end)
	if endErr != nil {
		errs = append(errs, fmt.Errorf("%s.end: %w", prefix, endErr))
	}
	if startErr == nil && endErr == nil && e <= s {
		errs = append(errs, fmt.Errorf("%s: end %s must be after start %s", prefix, end, start))
	}
	return errs
}

func validateWindows(prefix string, specs []string) []error {
	var errs []error
	for i, s := range specs {
		if _, err := domain.ParseWindow(s); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", prefix, i, err))
		}
	}
	return errs
}

func validateWeekdays(prefix string, names []string) []error {
	var errs []error
	for i, n := range names {
		if _, err := domain.ParseWeekday(n); err != nil {
			errs = append(errs, fmt.Errorf("%s[%d]: %w", prefix, i, err))
		}
	}
	return errs
}

// ParseInstant accepts RFC3339 or "2006-01-02 15:04" in local time.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Local(), nil
	}
	t, err := time.ParseInLocation(localTimeLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q (expected RFC3339 or YYYY-MM-DD HH:MM)", s)
	}
	return t, nil
}
