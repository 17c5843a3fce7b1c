// Package conflict detects booking conflicts for a candidate appointment and
// proposes ranked resolution strategies. Every entry point is a pure function
// of its arguments and the engine options.
package conflict

import (
	"fmt"
	"sort"
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

// Conflict is one detected problem with a candidate appointment.
type Conflict struct {
	Kind                      domain.ConflictKind
	Severity                  domain.Severity
	Description               string
	ConflictingAppointmentIDs []string
	SuggestedResolution       string
	SuggestedTime             *time.Time
}

// Strategy is one proposed fix. Nil fields mean "unchanged".
type Strategy struct {
	Kind           domain.StrategyKind
	NewStartTime   *time.Time
	NewBarberID    *string
	NewDurationMin *int
	Impact         domain.ImpactTier
	Confidence     int
	Reasoning      string
}

// Analysis is the result of one Analyze call.
type Analysis struct {
	Candidate         domain.Appointment
	HasConflicts      bool
	Conflicts         []Conflict
	RiskScore         int
	Recommendations   []Strategy
	AffectedBarberIDs []string
	UtilizationPct    float64
}

// Has reports whether any conflict of the given kind was detected.
func (a *Analysis) Has(kind domain.ConflictKind) bool {
	for _, c := range a.Conflicts {
		if c.Kind == kind {
			return true
		}
	}
	return false
}

// MaxSeverity returns the highest severity present, or "" when clean.
func (a *Analysis) MaxSeverity() domain.Severity {
	var best domain.Severity
	for _, c := range a.Conflicts {
		if c.Severity.Weight() > best.Weight() {
			best = c.Severity
		}
	}
	return best
}

// Engine is immutable and safe for concurrent use.
type Engine struct {
	opts  Options
	order map[domain.StrategyKind]int
}

// NewEngine validates opts and builds an engine.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid conflict options: %w", err)
	}
	opts.StrategyOrder = append([]domain.StrategyKind(nil), opts.StrategyOrder...)
	order := make(map[domain.StrategyKind]int, len(opts.StrategyOrder))
	for i, k := range opts.StrategyOrder {
		order[k] = i
	}
	return &Engine{opts: opts, order: order}, nil
}

// MustNewEngine panics on invalid options. Intended for defaults and tests.
func MustNewEngine(opts Options) *Engine {
	e, err := NewEngine(opts)
	if err != nil {
		panic(err)
	}
	return e
}

// Options returns a copy of the engine configuration.
func (e *Engine) Options() Options {
	o := e.opts
	o.StrategyOrder = append([]domain.StrategyKind(nil), e.opts.StrategyOrder...)
	return o
}

// Analyze checks candidate against the existing bookings and the roster.
func (e *Engine) Analyze(candidate domain.Appointment, existing []domain.Appointment, barbers []domain.Barber) Analysis {
	barber := domain.FindBarber(barbers, candidate.BarberID)
	if barber == nil {
		return Analysis{
			Candidate:    candidate,
			HasConflicts: true,
			Conflicts: []Conflict{{
				Kind:                domain.ConflictBarberUnavailable,
				Severity:            domain.SeverityCritical,
				Description:         fmt.Sprintf("Barber %q is not on the roster", candidate.BarberID),
				SuggestedResolution: "Choose a barber from the roster",
			}},
			RiskScore:         100,
			AffectedBarberIDs: []string{candidate.BarberID},
		}
	}

	cand := candidate.Range()
	sameDay := e.sameDayBookings(candidate.BarberID, candidate.StartTime, existing, candidate.ID)

	var conflicts []Conflict
	conflicts = append(conflicts, checkAvailability(barber)...)
	conflicts = append(conflicts, checkOverlaps(cand, sameDay)...)
	if e.opts.RespectWorkingHours {
		conflicts = append(conflicts, checkWorkingHours(barber, cand)...)
	}
	if e.opts.RespectBreaks {
		conflicts = append(conflicts, checkBreaks(barber, cand)...)
	}
	if !e.opts.AllowBackToBack {
		conflicts = append(conflicts, e.checkBuffers(&candidate, sameDay)...)
	}
	conflicts = append(conflicts, checkDoubleBooking(cand, sameDay)...)

	analysis := Analysis{
		Candidate:      candidate,
		HasConflicts:   len(conflicts) > 0,
		Conflicts:      conflicts,
		RiskScore:      RiskScore(conflicts),
		UtilizationPct: Utilization(barber, cand.Minutes(), sameDay),
	}
	if analysis.HasConflicts {
		analysis.Recommendations = e.recommend(&candidate, barber, existing, barbers, conflicts)
	}
	analysis.AffectedBarberIDs = affectedBarbers(candidate.BarberID, conflicts, sameDay)
	return analysis
}

// sameDayBookings returns the bookings that still occupy barberID's chair on
// day's calendar date, excluding excludeID.
func (e *Engine) sameDayBookings(barberID string, day time.Time, existing []domain.Appointment, excludeID string) []domain.Appointment {
	var out []domain.Appointment
	for _, a := range existing {
		if a.BarberID != barberID || !a.Status.Blocking() {
			continue
		}
		if excludeID != "" && a.ID == excludeID {
			continue
		}
		if !domain.SameDay(day, a.StartTime) {
			continue
		}
		out = append(out, a)
	}
	return out
}

func affectedBarbers(candidateBarber string, conflicts []Conflict, sameDay []domain.Appointment) []string {
	byID := make(map[string]string, len(sameDay))
	for _, a := range sameDay {
		byID[a.ID] = a.BarberID
	}
	set := map[string]bool{candidateBarber: true}
	for _, c := range conflicts {
		for _, id := range c.ConflictingAppointmentIDs {
			if b, ok := byID[id]; ok {
				set[b] = true
			}
		}
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
