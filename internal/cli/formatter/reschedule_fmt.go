package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/reschedule"
)

// FormatReschedule renders suggestions, cascades, skipped appointments and
// the overall recommendation.
func FormatReschedule(resp *contract.RescheduleResponse) string {
	names := make(map[string]string, len(resp.Barbers))
	for _, b := range resp.Barbers {
		names[b.ID] = b.Name
	}
	res := resp.Result

	var b strings.Builder
	if len(res.Suggestions) > 0 {
		b.WriteString(Header("Suggestions") + "\n")
		for _, s := range res.Suggestions {
			writeSuggestion(&b, s, names)
		}
	}

	if len(res.Cascades) > 0 {
		b.WriteString("\n" + Header("Knock-on moves") + "\n")
		for _, s := range res.Cascades {
			fmt.Fprintf(&b, "%s  %s → %s  %s\n",
				TruncID(s.AppointmentID),
				Slot(s.OriginalStart, s.OriginalDurationMin),
				s.NewStartTime.Format("15:04"),
				Dim(fmt.Sprintf("after %s, depth %d", TruncID(s.CascadeOf), s.CascadeDepth)))
		}
	}

	var skipped []reschedule.Outcome
	for _, o := range res.Outcomes {
		if o.Kind != reschedule.OutcomeSuggested {
			skipped = append(skipped, o)
		}
	}
	if len(skipped) > 0 {
		b.WriteString("\n" + Header("Not moved") + "\n")
		for _, o := range skipped {
			fmt.Fprintf(&b, "%s  %s  %s\n", TruncID(o.AppointmentID), StyleYellow.Render(string(o.Kind)), o.Message)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Total impact:      %d/100\n", res.TotalImpact)
	fmt.Fprintf(&b, "Avg satisfaction:  %.1f\n", res.AvgSatisfaction)
	fmt.Fprintf(&b, "Recommendation:    %s\n", ActionBadge(res.RecommendedAction))
	if resp.Applied {
		fmt.Fprintf(&b, "\n%s\n", StyleGreen.Render(fmt.Sprintf("Applied %d move(s).", len(resp.AppliedIDs))))
	}

	return RenderBox("Reschedule", strings.TrimRight(b.String(), "\n"))
}

func writeSuggestion(b *strings.Builder, s reschedule.Suggestion, names map[string]string) {
	target := s.NewStartTime.Format("Mon Jan 2 15:04")
	if s.NewBarberID != s.OriginalBarberID {
		target += " with " + Name(names, s.NewBarberID)
	}
	if s.NewDurationMin != s.OriginalDurationMin {
		target += " for " + FormatMinutes(s.NewDurationMin)
	}
	fmt.Fprintf(b, "%s  %s  %s → %s\n",
		TruncID(s.AppointmentID), Bold(s.ClientKey), Slot(s.OriginalStart, s.OriginalDurationMin), target)
	fmt.Fprintf(b, "   confidence %d  satisfaction %d  impact %d  retention %s\n",
		s.Confidence, s.Satisfaction, s.Impact, s.Business.RetentionRisk)
	for _, r := range s.Reasons {
		b.WriteString("   " + Dim("· "+r.Message) + "\n")
	}
	for _, alt := range s.Alternatives {
		fmt.Fprintf(b, "   %s\n", Dim(fmt.Sprintf("alt: %s with %s (confidence %d)",
			Slot(alt.StartTime, alt.DurationMin), Name(names, alt.BarberID), alt.Confidence)))
	}
}
