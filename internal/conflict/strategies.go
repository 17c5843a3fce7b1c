package conflict

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/chairside/internal/domain"
)

const (
	durationCutMin      = 15
	minimumDurationMin  = 15
	splitThresholdMin   = 60
	reassignConfidence  = 75
	adjustConfidence    = 60
	splitConfidence     = 70
	rescheduleFloorConf = 50
)

func (e *Engine) recommend(
	cand *domain.Appointment,
	barber *domain.Barber,
	existing []domain.Appointment,
	barbers []domain.Barber,
	conflicts []Conflict,
) []Strategy {
	var out []Strategy
	generators := []func() *Strategy{
		func() *Strategy { return e.rescheduleStrategy(cand, barber, existing) },
		func() *Strategy { return e.reassignStrategy(cand, existing, barbers) },
		func() *Strategy { return adjustDurationStrategy(cand, conflicts) },
		func() *Strategy { return e.splitStrategy(cand, barber, existing) },
	}
	for _, g := range generators {
		if s := g(); s != nil {
			out = append(out, *s)
		}
	}
	if len(out) == 0 {
		out = append(out, Strategy{
			Kind:       domain.StrategyManualIntervene,
			Impact:     domain.ImpactSignificant,
			Confidence: 0,
			Reasoning:  "No automatic resolution fits; review the booking by hand",
		})
	}
	e.sortStrategies(out)
	return out
}

func (e *Engine) rescheduleStrategy(cand *domain.Appointment, barber *domain.Barber, existing []domain.Appointment) *Strategy {
	if !barber.Available {
		return nil
	}
	t, diff, ok := e.nearestSlot(barber, cand, existing)
	if !ok {
		return nil
	}
	confidence := 100 - diff/10
	if confidence < rescheduleFloorConf {
		confidence = rescheduleFloorConf
	}
	return &Strategy{
		Kind:         domain.StrategyReschedule,
		NewStartTime: &t,
		Impact:       impactForShift(diff),
		Confidence:   confidence,
		Reasoning:    fmt.Sprintf("Nearest free slot is %s, %d minutes from the requested time", t.Format(clockLayout), diff),
	}
}

func impactForShift(minutes int) domain.ImpactTier {
	switch {
	case minutes <= 30:
		return domain.ImpactMinimal
	case minutes <= 60:
		return domain.ImpactModerate
	default:
		return domain.ImpactSignificant
	}
}

func (e *Engine) reassignStrategy(cand *domain.Appointment, existing []domain.Appointment, barbers []domain.Barber) *Strategy {
	duration := cand.Range().Minutes()
	for i := range barbers {
		b := &barbers[i]
		if b.ID == cand.BarberID || !b.Available {
			continue
		}
		if !e.IsSlotAvailable(b, cand.StartTime, duration, existing, cand.ID) {
			continue
		}
		id := b.ID
		return &Strategy{
			Kind:        domain.StrategyReassignBarber,
			NewBarberID: &id,
			Impact:      domain.ImpactModerate,
			Confidence:  reassignConfidence,
			Reasoning:   fmt.Sprintf("%s is free at the requested time", b.Name),
		}
	}
	return nil
}

func adjustDurationStrategy(cand *domain.Appointment, conflicts []Conflict) *Strategy {
	hasOverlap := false
	for _, c := range conflicts {
		if c.Kind == domain.ConflictTimeOverlap {
			hasOverlap = true
			break
		}
	}
	if !hasOverlap {
		return nil
	}
	duration := cand.Range().Minutes()
	shorter := duration - durationCutMin
	if shorter < minimumDurationMin {
		shorter = minimumDurationMin
	}
	if shorter >= duration {
		return nil
	}
	return &Strategy{
		Kind:           domain.StrategyAdjustDuration,
		NewDurationMin: &shorter,
		Impact:         domain.ImpactMinimal,
		Confidence:     adjustConfidence,
		Reasoning:      fmt.Sprintf("Shorten the service to %d minutes to reduce the overlap", shorter),
	}
}

func (e *Engine) splitStrategy(cand *domain.Appointment, barber *domain.Barber, existing []domain.Appointment) *Strategy {
	duration := cand.Range().Minutes()
	if duration < splitThresholdMin || !barber.Available {
		return nil
	}
	half := duration / 2
	if !e.IsSlotAvailable(barber, cand.StartTime, half, existing, cand.ID) {
		return nil
	}
	start := cand.StartTime
	return &Strategy{
		Kind:           domain.StrategySplit,
		NewStartTime:   &start,
		NewDurationMin: &half,
		Impact:         domain.ImpactSignificant,
		Confidence:     splitConfidence,
		Reasoning:      fmt.Sprintf("Split into two %d-minute visits; the first fits at the requested time", half),
	}
}

// sortStrategies orders by configured preference, then confidence descending.
// Kinds missing from the preference list sort last.
func (e *Engine) sortStrategies(s []Strategy) {
	rank := func(k domain.StrategyKind) int {
		if i, ok := e.order[k]; ok {
			return i
		}
		return len(e.order)
	}
	sort.SliceStable(s, func(i, j int) bool {
		ri, rj := rank(s[i].Kind), rank(s[j].Kind)
		if ri != rj {
			return ri < rj
		}
		return s[i].Confidence > s[j].Confidence
	})
}
