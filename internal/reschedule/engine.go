// Package reschedule generates bulk rescheduling suggestions for conflicting
// appointments. Candidate slots are checked with the conflict engine and then
// scored against client preferences and shop rules.
package reschedule

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
)

// Request is one Generate call. Existing is the full booking snapshot and
// normally contains the conflicting appointments too. ClientPreferences is
// keyed by Appointment.ClientKey and is never modified.
type Request struct {
	Conflicting       []domain.Appointment
	Existing          []domain.Appointment
	Barbers           []domain.Barber
	ClientPreferences map[string]domain.ClientPreferences
	Now               time.Time
}

// Engine is immutable and safe for concurrent use.
type Engine struct {
	prefs    Preferences
	rules    domain.BusinessRules
	analyzer *conflict.Engine
}

func NewEngine(prefs Preferences, rules domain.BusinessRules, analyzer *conflict.Engine) (*Engine, error) {
	if analyzer == nil {
		return nil, fmt.Errorf("conflict engine is required")
	}
	if err := prefs.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rescheduling preferences: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid business rules: %w", err)
	}
	rules.PeakHours = append([]domain.TimeWindow(nil), rules.PeakHours...)
	return &Engine{prefs: prefs.clone(), rules: rules, analyzer: analyzer}, nil
}

// WithRules returns a new engine with patch merged over the current rules.
func (e *Engine) WithRules(patch domain.BusinessRulesPatch) (*Engine, error) {
	return NewEngine(e.prefs, e.rules.Merge(patch), e.analyzer)
}

func (e *Engine) Preferences() Preferences { return e.prefs.clone() }

func (e *Engine) Rules() domain.BusinessRules {
	r := e.rules
	r.PeakHours = append([]domain.TimeWindow(nil), e.rules.PeakHours...)
	return r
}

// Generate proposes a new slot for every eligible conflicting appointment
// and summarises the batch. Appointments are handled in input order and no
// two primary suggestions share a chair. It stops early only when ctx is cancelled.
func (e *Engine) Generate(ctx context.Context, req Request) (*Result, error) {
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}
	res := &Result{}
	// Primaries are placed on the board as they are chosen so later
	// appointments in the batch compete with them.
	board := append([]domain.Appointment(nil), req.Existing...)

	for _, appt := range req.Conflicting {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("generate suggestions: %w", err)
		}
		prefs, hasPrefs := req.ClientPreferences[appt.ClientKey()]
		var client *domain.ClientPreferences
		if hasPrefs {
			client = &prefs
		}

		if reason, msg, ok := e.eligible(&appt, client, now); !ok {
			res.Outcomes = append(res.Outcomes, Outcome{
				AppointmentID: appt.ID,
				Kind:          OutcomeIneligible,
				Reason:        reason,
				Message:       msg,
			})
			continue
		}

		best := e.rankCandidates(&appt, client, board, req.Barbers, now)
		if len(best) == 0 {
			res.Outcomes = append(res.Outcomes, Outcome{
				AppointmentID: appt.ID,
				Kind:          OutcomeNoCandidate,
				Message:       "No slot scored above the confidence threshold",
			})
			continue
		}

		primary := best[0].suggestion(&appt)
		for _, alt := range best[1:min(len(best), 1+maxAlternatives)] {
			primary.Alternatives = append(primary.Alternatives, alt.alternative())
		}
		res.Suggestions = append(res.Suggestions, primary)
		res.Outcomes = append(res.Outcomes, Outcome{AppointmentID: appt.ID, Kind: OutcomeSuggested})

		moved := appt.MoveTo(primary.NewStartTime, primary.NewBarberID, primary.NewDurationMin)
		board = withPlaced(board, moved)
		res.Cascades = append(res.Cascades, e.cascade(moved, board)...)
	}

	all := make([]Suggestion, 0, len(res.Suggestions)+len(res.Cascades))
	all = append(all, res.Suggestions...)
	all = append(all, res.Cascades...)
	res.TotalImpact = TotalImpact(res.Suggestions, res.Cascades)
	res.AvgSatisfaction = AverageSatisfaction(res.Suggestions)
	res.RecommendedAction = DecideAction(all, res.TotalImpact, res.AvgSatisfaction)
	res.Success = len(res.Suggestions) > 0
	return res, nil
}
