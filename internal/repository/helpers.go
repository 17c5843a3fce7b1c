package repository

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

// Instants are stored as UTC RFC3339 so string order matches time order,
// and read back in local time so clock-of-day checks see shop hours.
func timeToString(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func parseStoredTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.Local(), nil
}

func nullableIntToValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func nullIntToPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func intToBool(i int) bool {
	return i != 0
}

func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// Weekday sets, windows and tags are stored as comma-separated text.

func joinWeekdays(days []time.Weekday) string {
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = domain.WeekdayAbbrev(d)
	}
	return strings.Join(names, ",")
}

func splitWeekdays(s string) ([]time.Weekday, error) {
	return domain.ParseWeekdays(splitList(s))
}

func joinWindows(ws []domain.TimeWindow) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.String()
	}
	return strings.Join(parts, ",")
}

func splitWindows(s string) ([]domain.TimeWindow, error) {
	var out []domain.TimeWindow
	for _, part := range splitList(s) {
		w, err := domain.ParseWindow(part)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	return out, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseNullableClock(s sql.NullString) (*domain.ClockTime, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	c, err := domain.ParseClock(s.String)
	if err != nil {
		return nil, fmt.Errorf("stored clock: %w", err)
	}
	return &c, nil
}
