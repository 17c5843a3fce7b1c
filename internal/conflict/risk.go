package conflict

import (
	"math"

	"github.com/alexanderramin/chairside/internal/domain"
)

// RiskScore sums severity weights and caps the total at 100.
func RiskScore(conflicts []Conflict) int {
	total := 0
	for _, c := range conflicts {
		total += c.Severity.Weight()
	}
	if total > 100 {
		return 100
	}
	return total
}

// Utilization returns the share of the barber's working day that would be
// booked once a candidate of candidateMin minutes is added, capped at 100.
func Utilization(barber *domain.Barber, candidateMin int, sameDay []domain.Appointment) float64 {
	workday := barber.WorkdayMinutes()
	if workday <= 0 {
		return 100
	}
	booked := candidateMin
	for _, a := range sameDay {
		booked += a.Range().Minutes()
	}
	pct := float64(booked) / float64(workday) * 100
	return math.Min(100, math.Round(pct*10)/10)
}
