package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

const utilizationBarWidth = 12

// UtilizationRow is one barber's booked share of the day.
type UtilizationRow struct {
	BarberName     string
	Appointments   int
	BookedMin      int
	UtilizationPct float64
}

// DayBoardData is everything the day view renders.
type DayBoardData struct {
	Day          time.Time
	Appointments []*domain.Appointment
	BarberNames  map[string]string
	Utilization  []UtilizationRow
	TargetPct    float64
}

// FormatDayBoard renders the bookings of one day and per-barber utilization.
func FormatDayBoard(d DayBoardData) string {
	var b strings.Builder

	if len(d.Appointments) == 0 {
		b.WriteString(Dim("No appointments.") + "\n")
	} else {
		headers := []string{"ID", "TIME", "BARBER", "CLIENT", "SERVICE", "STATUS"}
		rows := make([][]string, 0, len(d.Appointments))
		for _, a := range d.Appointments {
			rows = append(rows, []string{
				TruncID(a.ID),
				ClockSpan(a.StartTime, a.DurationMin),
				Name(d.BarberNames, a.BarberID),
				Bold(a.ClientName),
				CoalesceDim(a.ServiceName),
				StatusPill(a.Status),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if len(d.Utilization) > 0 {
		b.WriteString("\n" + Header("Utilization") + "\n")
		rows := make([][]string, 0, len(d.Utilization))
		for _, u := range d.Utilization {
			rows = append(rows, []string{
				u.BarberName,
				fmt.Sprintf("%d", u.Appointments),
				FormatMinutes(u.BookedMin),
				RenderUtilization(u.UtilizationPct, d.TargetPct, utilizationBarWidth),
			})
		}
		b.WriteString(RenderTable([]string{"BARBER", "BOOKINGS", "BOOKED", "LOAD"}, rows))
		b.WriteString(Dim(fmt.Sprintf("target %.0f%%", d.TargetPct)) + "\n")
	}

	return RenderBox(d.Day.Format("Monday, Jan 2 2006"), strings.TrimRight(b.String(), "\n"))
}

// CoalesceDim returns s, or a dimmed placeholder when s is empty.
func CoalesceDim(s string) string {
	if s == "" {
		return Dim("--")
	}
	return s
}
