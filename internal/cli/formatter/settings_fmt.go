package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/domain"
)

func FormatRules(r *domain.BusinessRules) string {
	rows := [][]string{
		{"Peak hours", Windows(r.PeakHours)},
		{"Minimum notice", fmt.Sprintf("%dh", r.MinimumNoticeHours)},
		{"Max reschedulings per client", fmt.Sprintf("%d", r.MaxReschedulingsPerClient)},
		{"Target utilization", fmt.Sprintf("%.0f%%", r.TargetUtilizationPct)},
		{"Weekend scheduling", YesNo(r.AllowWeekendScheduling)},
	}
	return RenderBox("Business rules", strings.TrimRight(RenderTable([]string{"RULE", "VALUE"}, rows), "\n"))
}

func FormatClient(p *domain.ClientPreferences) string {
	days := Dim("--")
	if len(p.PreferredDays) > 0 {
		days = Weekdays(p.PreferredDays)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Preferred times:  %s\n", Windows(p.PreferredTimes))
	fmt.Fprintf(&b, "Avoid times:      %s\n", Windows(p.AvoidTimes))
	fmt.Fprintf(&b, "Preferred days:   %s\n", days)
	fmt.Fprintf(&b, "Flexibility:      %.2f\n", p.FlexibilityScore)
	fmt.Fprintf(&b, "Reschedulings:    %d", p.ReschedulingCount)
	return RenderBox("Client "+p.ClientID, b.String())
}

func FormatImportResult(r *contract.ImportResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Imported %d barber(s), %d appointment(s), %d client(s)", len(r.Barbers), r.Appointments, r.Clients)
	if r.RulesUpdated {
		b.WriteString(", business rules updated")
	}
	b.WriteString("\n")
	for _, br := range r.Barbers {
		fmt.Fprintf(&b, "  %s  %s\n", Bold(br.Name), Dim(br.ID))
	}
	return strings.TrimRight(b.String(), "\n")
}
