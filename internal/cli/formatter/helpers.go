package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		Padding(1, 2)

	if title == "" {
		return box.Render(content)
	}
	return box.Render(StyleHeader.Render(strings.ToUpper(title)) + "\n\n" + content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatMinutes renders 90 as "1h 30m".
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h, m := min/60, min%60
	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}

// Slot renders a booking as "Mon Mar 17 10:00-11:00".
func Slot(start time.Time, durationMin int) string {
	end := start.Add(time.Duration(durationMin) * time.Minute)
	return fmt.Sprintf("%s %s-%s", start.Format("Mon Jan 2"), start.Format("15:04"), end.Format("15:04"))
}

// ClockSpan renders "10:00-11:00" without the date.
func ClockSpan(start time.Time, durationMin int) string {
	end := start.Add(time.Duration(durationMin) * time.Minute)
	return start.Format("15:04") + "-" + end.Format("15:04")
}

// Weekdays renders a day set as "mon,tue,wed"; an empty set reads "every day".
func Weekdays(days []time.Weekday) string {
	if len(days) == 0 {
		return "every day"
	}
	names := make([]string, len(days))
	for i, d := range days {
		names[i] = domain.WeekdayAbbrev(d)
	}
	return strings.Join(names, ",")
}

func Windows(ws []domain.TimeWindow) string {
	if len(ws) == 0 {
		return "--"
	}
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.String()
	}
	return strings.Join(parts, ", ")
}

// Name returns names[id] or the truncated id when unknown.
func Name(names map[string]string, id string) string {
	if n, ok := names[id]; ok && n != "" {
		return n
	}
	return TruncID(id)
}

func YesNo(v bool) string {
	if v {
		return StyleGreen.Render("yes")
	}
	return StyleDim.Render("no")
}
