package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chairside/internal/domain"
)

func FormatBarberList(barbers []*domain.Barber) string {
	headers := []string{"ID", "NAME", "HOURS", "DAYS", "SKILLS", "AVAILABLE"}
	rows := make([][]string, 0, len(barbers))
	for _, b := range barbers {
		hours, days := Dim("--"), Dim("--")
		if wh := b.WorkingHours; wh != nil {
			hours = wh.Window().String()
			days = Weekdays(wh.Days)
		}
		skills := Dim("--")
		if len(b.Skills) > 0 {
			skills = StylePurple.Render(strings.Join(b.Skills, ", "))
		}
		rows = append(rows, []string{TruncID(b.ID), Bold(b.Name), hours, days, skills, YesNo(b.Available)})
	}
	return RenderTable(headers, rows)
}

// FormatBarber renders one barber with breaks.
func FormatBarber(b *domain.Barber) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s  %s\n", Bold(b.Name), Dim(b.ID))
	if b.Email != "" {
		fmt.Fprintf(&sb, "Email:      %s\n", b.Email)
	}
	if wh := b.WorkingHours; wh != nil {
		fmt.Fprintf(&sb, "Hours:      %s on %s\n", wh.Window(), Weekdays(wh.Days))
	} else {
		fmt.Fprintf(&sb, "Hours:      %s\n", Dim("not set"))
	}
	fmt.Fprintf(&sb, "Available:  %s\n", YesNo(b.Available))
	if len(b.Skills) > 0 {
		fmt.Fprintf(&sb, "Skills:     %s\n", strings.Join(b.Skills, ", "))
	}
	if len(b.Breaks) > 0 {
		sb.WriteString("\n" + Header("Breaks") + "\n")
		for _, br := range b.Breaks {
			when := Weekdays(br.Days)
			if br.Date != nil {
				when = br.Date.Format("2006-01-02")
			}
			label := ""
			if br.Label != "" {
				label = "  " + Dim(br.Label)
			}
			fmt.Fprintf(&sb, "  %s-%s  %s%s\n", br.Start, br.End, when, label)
		}
	}
	return RenderBox("Barber", strings.TrimRight(sb.String(), "\n"))
}
