package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/importer"
	"github.com/spf13/pflag"
)

const dateLayout = "2006-01-02"

// slotFlags are shared by "appointment add" and "check".
type slotFlags struct {
	barber       string
	start        string
	duration     int
	client       string
	clientID     string
	service      string
	bufferBefore int
	bufferAfter  int
	priority     int
}

func (s *slotFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&s.barber, "barber", "", "Barber ID, ID prefix or name")
	fs.StringVar(&s.start, "start", "", `Start time ("2006-01-02 15:04" local, or RFC3339)`)
	fs.IntVar(&s.duration, "duration", 0, "Duration in minutes")
	fs.StringVar(&s.client, "client", "", "Client display name")
	fs.StringVar(&s.clientID, "client-id", "", "Stable client identifier for preferences")
	fs.StringVar(&s.service, "service", "", "Service name")
	fs.IntVar(&s.bufferBefore, "buffer-before", 0, "Buffer before the appointment in minutes")
	fs.IntVar(&s.bufferAfter, "buffer-after", 0, "Buffer after the appointment in minutes")
	fs.IntVar(&s.priority, "priority", 0, "Booking priority (higher wins ties)")
}

// appointment builds the candidate. Optional fields stay nil unless their
// flag was given.
func (s *slotFlags) appointment(ctx context.Context, a *App, fs *pflag.FlagSet) (*domain.Appointment, error) {
	barberID, err := resolveBarberID(ctx, a, s.barber)
	if err != nil {
		return nil, err
	}
	start, err := importer.ParseInstant(s.start)
	if err != nil {
		return nil, fmt.Errorf("invalid --start: %w", err)
	}
	appt := &domain.Appointment{
		StartTime:   start,
		DurationMin: s.duration,
		BarberID:    barberID,
		ClientID:    s.clientID,
		ClientName:  domain.CoalesceStr(s.client, s.clientID),
		ServiceName: s.service,
		Status:      domain.StatusScheduled,
	}
	if fs.Changed("buffer-before") {
		appt.BufferBeforeMin = &s.bufferBefore
	}
	if fs.Changed("buffer-after") {
		appt.BufferAfterMin = &s.bufferAfter
	}
	if fs.Changed("priority") {
		appt.Priority = &s.priority
	}
	return appt, nil
}

// parseDate reads YYYY-MM-DD as local midnight.
func parseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", s)
	}
	return t, nil
}

func parseWindows(specs []string) ([]domain.TimeWindow, error) {
	out := make([]domain.TimeWindow, 0, len(specs))
	for _, spec := range specs {
		w, err := domain.ParseWindow(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

// parseDays reads "mon,tue" into weekdays.
func parseDays(s string) ([]time.Weekday, error) {
	return domain.ParseWeekdays(strings.Split(s, ","))
}

// parseBreak reads "13:00-13:30", "13:00-13:30@mon,fri" or
// "13:00-13:30@2025-03-17".
func parseBreak(spec, label string) (domain.BreakTime, error) {
	window, when, _ := strings.Cut(spec, "@")
	w, err := domain.ParseWindow(window)
	if err != nil {
		return domain.BreakTime{}, fmt.Errorf("break %q: %w", spec, err)
	}
	br := domain.BreakTime{Start: w.Start, End: w.End, Label: label}
	if when == "" {
		return br, nil
	}
	if d, err := parseDate(when); err == nil {
		br.Date = &d
		return br, nil
	}
	if br.Days, err = parseDays(when); err != nil {
		return domain.BreakTime{}, fmt.Errorf("break %q: %w", spec, err)
	}
	return br, nil
}
