package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
)

// FormatAnalysis renders the conflicts and ranked strategies of one check.
func FormatAnalysis(a conflict.Analysis, barberNames map[string]string) string {
	var b strings.Builder
	c := a.Candidate

	fmt.Fprintf(&b, "%s with %s  %s\n", Bold(c.ClientName), Name(barberNames, c.BarberID), Slot(c.StartTime, c.DurationMin))
	fmt.Fprintf(&b, "Risk:         %s  %s\n", RiskScore(a.RiskScore), SeverityBadge(a.MaxSeverity()))
	fmt.Fprintf(&b, "Utilization:  %.1f%%\n", a.UtilizationPct)

	if !a.HasConflicts {
		b.WriteString("\n" + StyleGreen.Render("No conflicts.") + "\n")
		return RenderBox("Conflict check", strings.TrimRight(b.String(), "\n"))
	}

	b.WriteString("\n" + Header("Conflicts") + "\n")
	b.WriteString(FormatConflicts(a.Conflicts))

	if len(a.Recommendations) > 0 {
		b.WriteString("\n" + Header("Recommendations") + "\n")
		for i, s := range a.Recommendations {
			fmt.Fprintf(&b, "%d. %s  %s\n", i+1, Bold(string(s.Kind)), describeStrategy(s, barberNames))
			if s.Reasoning != "" {
				b.WriteString("   " + Dim(s.Reasoning) + "\n")
			}
		}
	}

	if len(a.AffectedBarberIDs) > 0 {
		names := make([]string, len(a.AffectedBarberIDs))
		for i, id := range a.AffectedBarberIDs {
			names[i] = Name(barberNames, id)
		}
		fmt.Fprintf(&b, "\nAffected barbers: %s\n", strings.Join(names, ", "))
	}

	return RenderBox("Conflict check", strings.TrimRight(b.String(), "\n"))
}

// FormatConflicts lists conflicts one per line with severity and fix hint.
func FormatConflicts(conflicts []conflict.Conflict) string {
	var b strings.Builder
	for _, c := range conflicts {
		fmt.Fprintf(&b, "%s  %s  %s\n", SeverityBadge(c.Severity), Bold(string(c.Kind)), c.Description)
		if c.SuggestedResolution != "" {
			hint := c.SuggestedResolution
			if c.SuggestedTime != nil {
				hint += " (" + c.SuggestedTime.Format("15:04") + ")"
			}
			b.WriteString("   " + Dim(hint) + "\n")
		}
	}
	return b.String()
}

func describeStrategy(s conflict.Strategy, barberNames map[string]string) string {
	var parts []string
	if s.NewStartTime != nil {
		parts = append(parts, "at "+s.NewStartTime.Format("Mon 15:04"))
	}
	if s.NewBarberID != nil {
		parts = append(parts, "with "+Name(barberNames, *s.NewBarberID))
	}
	if s.NewDurationMin != nil {
		parts = append(parts, "for "+FormatMinutes(*s.NewDurationMin))
	}
	parts = append(parts, fmt.Sprintf("confidence %d", s.Confidence), impactTier(s.Impact))
	return strings.Join(parts, "  ")
}

func impactTier(t domain.ImpactTier) string {
	switch t {
	case domain.ImpactMinimal:
		return StyleGreen.Render("minimal impact")
	case domain.ImpactModerate:
		return StyleYellow.Render("moderate impact")
	case domain.ImpactSignificant:
		return StyleRed.Render("significant impact")
	default:
		return Dim(string(t))
	}
}

// FormatHistory renders stored conflict checks, newest first.
func FormatHistory(runs []*domain.AnalysisRun, barberNames map[string]string) string {
	headers := []string{"WHEN", "SLOT", "BARBER", "RISK", "CONFLICTS", "TOP STRATEGY"}
	rows := make([][]string, 0, len(runs))
	for _, r := range runs {
		rows = append(rows, []string{
			r.CreatedAt.Format("2006-01-02 15:04"),
			Slot(r.StartTime, r.DurationMin),
			Name(barberNames, r.BarberID),
			RiskScore(r.RiskScore),
			fmt.Sprintf("%d", r.ConflictCount),
			CoalesceDim(r.TopStrategy),
		})
	}
	return RenderTable(headers, rows)
}
