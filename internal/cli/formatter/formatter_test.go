package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/contract"
	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/reschedule"
	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

var monday = time.Date(2025, 3, 17, 0, 0, 0, 0, time.Local)

func TestRenderTable_AlignsStyledCells(t *testing.T) {
	out := stripANSI(RenderTable([]string{"A", "BB"}, [][]string{
		{StyleRed.Render("long cell"), "x"},
		{"s"},
	}))
	lines := regexp.MustCompile("\n").Split(out, -1)
	assert.Equal(t, "A          BB", lines[0])
	assert.Equal(t, "long cell  x", lines[2])
	assert.Equal(t, "s          ", lines[3])
	assert.Empty(t, RenderTable(nil, nil))
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0m"}, {-5, "0m"}, {45, "45m"}, {60, "1h"}, {90, "1h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatMinutes(tt.in))
	}
}

func TestSlotAndWeekdays(t *testing.T) {
	start := monday.Add(10*time.Hour + 30*time.Minute)
	assert.Equal(t, "Mon Mar 17 10:30-11:15", Slot(start, 45))
	assert.Equal(t, "10:30-11:15", ClockSpan(start, 45))
	assert.Equal(t, "mon,fri", Weekdays([]time.Weekday{time.Monday, time.Friday}))
	assert.Equal(t, "every day", Weekdays(nil))
}

func TestRenderUtilization(t *testing.T) {
	out := stripANSI(RenderUtilization(50, 85, 10))
	assert.Equal(t, "[█████░░░░░]  50%", out)

	over := stripANSI(RenderUtilization(130, 85, 4))
	assert.Contains(t, over, "████")
	assert.Contains(t, over, "130%")
}

func TestFormatAnalysis_CleanAndConflicted(t *testing.T) {
	names := map[string]string{"b1": "Ana", "b2": "Ben"}
	cand := domain.Appointment{ID: "a", BarberID: "b1", ClientName: "Jo", StartTime: monday.Add(10 * time.Hour), DurationMin: 60}

	clean := stripANSI(FormatAnalysis(conflict.Analysis{Candidate: cand}, names))
	assert.Contains(t, clean, "No conflicts.")
	assert.Contains(t, clean, "Jo with Ana")

	suggested := monday.Add(12 * time.Hour)
	other := "b2"
	a := conflict.Analysis{
		Candidate:    cand,
		HasConflicts: true,
		RiskScore:    100,
		Conflicts: []conflict.Conflict{{
			Kind:                domain.ConflictDoubleBooking,
			Severity:            domain.SeverityCritical,
			Description:         "Ana is already booked",
			SuggestedResolution: "move to the next free slot",
			SuggestedTime:       &suggested,
		}},
		Recommendations: []conflict.Strategy{{
			Kind:        domain.StrategyReassignBarber,
			NewBarberID: &other,
			Impact:      domain.ImpactMinimal,
			Confidence:  80,
			Reasoning:   "Ben is free",
		}},
		AffectedBarberIDs: []string{"b1"},
	}
	out := stripANSI(FormatAnalysis(a, names))
	assert.Contains(t, out, "● CRITICAL")
	assert.Contains(t, out, "double_booking")
	assert.Contains(t, out, "(12:00)")
	assert.Contains(t, out, "1. reassign_barber")
	assert.Contains(t, out, "with Ben")
	assert.Contains(t, out, "100/100")
	assert.Contains(t, out, "Affected barbers: Ana")
}

func TestFormatReschedule(t *testing.T) {
	orig := monday.Add(10*time.Hour + 30*time.Minute)
	resp := &contract.RescheduleResponse{
		Barbers: []domain.Barber{{ID: "b1", Name: "Ana"}},
		Result: &reschedule.Result{
			Suggestions: []reschedule.Suggestion{{
				AppointmentID:       "appt-0001",
				ClientKey:           "Cy",
				OriginalStart:       orig,
				OriginalBarberID:    "b1",
				OriginalDurationMin: 60,
				NewStartTime:        monday.Add(12 * time.Hour),
				NewBarberID:         "b1",
				NewDurationMin:      60,
				Confidence:          100,
				Satisfaction:        80,
				Impact:              2,
				Reasons:             []reschedule.Reason{{Code: reschedule.ReasonOffPeak, Message: "off-peak slot"}},
				Business:            reschedule.BusinessImpact{RetentionRisk: domain.RetentionLow},
			}},
			Outcomes: []reschedule.Outcome{
				{AppointmentID: "appt-0001", Kind: reschedule.OutcomeSuggested},
				{AppointmentID: "appt-0002", Kind: reschedule.OutcomeIneligible, Message: "inside the notice window"},
			},
			TotalImpact:       2,
			AvgSatisfaction:   80,
			RecommendedAction: domain.ActionAutoApply,
		},
		Applied:    true,
		AppliedIDs: []string{"appt-0001"},
	}

	out := stripANSI(FormatReschedule(resp))
	assert.Contains(t, out, "Cy")
	assert.Contains(t, out, "Mon Mar 17 12:00")
	assert.NotContains(t, out, "12:00 with Ana", "same barber is not repeated")
	assert.Contains(t, out, "off-peak slot")
	assert.Contains(t, out, "inside the notice window")
	assert.Contains(t, out, "▶ AUTO APPLY")
	assert.Contains(t, out, "Applied 1 move(s).")
}

func TestFormatBarberAndRules(t *testing.T) {
	b := &domain.Barber{
		ID:   "b1",
		Name: "Ana",
		WorkingHours: &domain.WorkingHours{
			Start: domain.MustClock("09:00"), End: domain.MustClock("18:00"),
			Days: []time.Weekday{time.Monday, time.Tuesday},
		},
		Breaks:    []domain.BreakTime{{Start: domain.MustClock("13:00"), End: domain.MustClock("13:30"), Label: "lunch"}},
		Available: true,
	}
	out := stripANSI(FormatBarber(b))
	assert.Contains(t, out, "09:00-18:00 on mon,tue")
	assert.Contains(t, out, "13:00-13:30  every day  lunch")

	list := stripANSI(FormatBarberList([]*domain.Barber{b}))
	assert.Contains(t, list, "Ana")
	assert.Contains(t, list, "yes")

	rules := domain.DefaultBusinessRules()
	r := stripANSI(FormatRules(&rules))
	assert.Contains(t, r, "10:00-12:00, 16:00-19:00")
	assert.Contains(t, r, "24h")
	assert.Contains(t, r, "85%")
}
