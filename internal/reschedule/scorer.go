package reschedule

import (
	"fmt"
	"math"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

const (
	baseSatisfaction     = 80.0
	baseImpact           = 1.0
	maxDistancePenalty   = 30.0
	distancePerHour      = 1.25
	maxDistanceImpact    = 3.0
	flexibleClient       = 0.7
	historyThreshold     = 2
	weekendPenalty       = -40.0
	offPeakBonus         = 5.0
	barberChangeConfPen  = -15.0
	barberChangeSatPen   = -10.0
	barberChangeImpact   = 2.0
	historyConfPenalty   = -10.0
	historySatPenalty    = -15.0
	historyImpact        = 2.0
	avoidConfPenalty     = -20.0
	avoidSatPenalty      = -25.0
	avoidImpact          = 1.0
	preferredDayConf     = 5.0
	preferredDaySat      = 10.0
	preferredTimeConf    = 10.0
	preferredTimeSat     = 15.0
	shorterConfDivisor   = 3.0
	shorterSatDivisor    = 2.0
	shorterImpactDivisor = 15.0
)

type scoreInput struct {
	original *domain.Appointment
	start    time.Time
	barberID string
	duration int
	risk     int
	client   *domain.ClientPreferences
	rules    domain.BusinessRules
}

type score struct {
	confidence   float64
	satisfaction float64
	impact       float64
	reasons      []Reason
}

func (s score) Confidence() int   { return int(math.Round(s.confidence)) }
func (s score) Satisfaction() int { return int(math.Round(s.satisfaction)) }
func (s score) Impact() int       { return int(math.Round(s.impact)) }

// scoreCandidate applies every factor and clamps the totals to their ranges.
func scoreCandidate(in scoreInput) score {
	s := score{confidence: 100, satisfaction: baseSatisfaction, impact: baseImpact}
	factors := []func(scoreInput) *Reason{
		scoreConflictRisk,
		scoreDistance,
		scorePreferredDay,
		scorePreferredTime,
		scoreAvoidTime,
		scoreHistory,
		scoreBarberChange,
		scoreShorter,
		scoreOffPeak,
		scoreWeekend,
	}
	for _, f := range factors {
		r := f(in)
		if r == nil {
			continue
		}
		s.confidence += r.ConfidenceDelta
		s.satisfaction += r.SatisfactionDelta
		s.impact += r.ImpactDelta
		s.reasons = append(s.reasons, *r)
	}
	s.confidence = clamp(s.confidence, 0, 100)
	s.satisfaction = clamp(s.satisfaction, 0, 100)
	s.impact = clamp(s.impact, 1, 10)
	return s
}

func scoreConflictRisk(in scoreInput) *Reason {
	if in.risk == 0 {
		return nil
	}
	return &Reason{
		Code:            ReasonConflictRisk,
		Message:         fmt.Sprintf("Slot still carries conflict risk %d", in.risk),
		ConfidenceDelta: -float64(in.risk),
	}
}

func scoreDistance(in scoreInput) *Reason {
	hours := absDuration(in.start.Sub(in.original.StartTime)).Hours()
	if hours == 0 {
		return nil
	}
	penalty := math.Min(maxDistancePenalty, hours*distancePerHour)
	if in.client != nil && in.client.FlexibilityScore >= flexibleClient {
		penalty /= 2
	}
	return &Reason{
		Code:            ReasonTimeDistance,
		Message:         fmt.Sprintf("Moves %s from the original time", formatHours(hours)),
		ConfidenceDelta: -penalty,
		ImpactDelta:     math.Min(maxDistanceImpact, math.Ceil(hours/24)),
	}
}

func scorePreferredDay(in scoreInput) *Reason {
	if in.client == nil || len(in.client.PreferredDays) == 0 || !in.client.PrefersDay(in.start.Weekday()) {
		return nil
	}
	return &Reason{
		Code:              ReasonPreferredDay,
		Message:           fmt.Sprintf("%s is a preferred day", in.start.Weekday()),
		ConfidenceDelta:   preferredDayConf,
		SatisfactionDelta: preferredDaySat,
	}
}

func scorePreferredTime(in scoreInput) *Reason {
	if in.client == nil || !in.client.PrefersTime(domain.ClockOf(in.start)) {
		return nil
	}
	return &Reason{
		Code:              ReasonPreferredTime,
		Message:           fmt.Sprintf("%s is inside a preferred window", domain.ClockOf(in.start)),
		ConfidenceDelta:   preferredTimeConf,
		SatisfactionDelta: preferredTimeSat,
	}
}

func scoreAvoidTime(in scoreInput) *Reason {
	if in.client == nil || !in.client.AvoidsTime(domain.ClockOf(in.start)) {
		return nil
	}
	return &Reason{
		Code:              ReasonAvoidTime,
		Message:           fmt.Sprintf("%s falls in a window the client avoids", domain.ClockOf(in.start)),
		ConfidenceDelta:   avoidConfPenalty,
		SatisfactionDelta: avoidSatPenalty,
		ImpactDelta:       avoidImpact,
	}
}

func scoreHistory(in scoreInput) *Reason {
	if in.client == nil || in.client.ReschedulingCount < historyThreshold {
		return nil
	}
	return &Reason{
		Code:              ReasonHistory,
		Message:           fmt.Sprintf("Client has already been rescheduled %d times", in.client.ReschedulingCount),
		ConfidenceDelta:   historyConfPenalty,
		SatisfactionDelta: historySatPenalty,
		ImpactDelta:       historyImpact,
	}
}

func scoreBarberChange(in scoreInput) *Reason {
	if in.barberID == in.original.BarberID {
		return nil
	}
	return &Reason{
		Code:              ReasonBarberChange,
		Message:           fmt.Sprintf("Moves the client to barber %s", in.barberID),
		ConfidenceDelta:   barberChangeConfPen,
		SatisfactionDelta: barberChangeSatPen,
		ImpactDelta:       barberChangeImpact,
	}
}

func scoreShorter(in scoreInput) *Reason {
	lost := in.original.Range().Minutes() - in.duration
	if lost <= 0 {
		return nil
	}
	m := float64(lost)
	return &Reason{
		Code:              ReasonShorter,
		Message:           fmt.Sprintf("Service shortened by %d minutes", lost),
		ConfidenceDelta:   -m / shorterConfDivisor,
		SatisfactionDelta: -m / shorterSatDivisor,
		ImpactDelta:       m / shorterImpactDivisor,
	}
}

func scoreOffPeak(in scoreInput) *Reason {
	if in.rules.InPeakHours(domain.ClockOf(in.start)) {
		return nil
	}
	return &Reason{
		Code:            ReasonOffPeak,
		Message:         "Outside peak hours",
		ConfidenceDelta: offPeakBonus,
	}
}

func scoreWeekend(in scoreInput) *Reason {
	if in.rules.AllowWeekendScheduling || !domain.IsWeekend(in.start) {
		return nil
	}
	return &Reason{
		Code:            ReasonWeekendBlocked,
		Message:         "Weekend scheduling is not allowed",
		ConfidenceDelta: weekendPenalty,
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func formatHours(h float64) string {
	if h < 24 {
		return fmt.Sprintf("%.1fh", h)
	}
	return fmt.Sprintf("%.1f days", h/24)
}
