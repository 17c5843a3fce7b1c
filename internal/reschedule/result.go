package reschedule

import (
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
)

type ReasonCode string

const (
	ReasonConflictRisk   ReasonCode = "CONFLICT_RISK"
	ReasonTimeDistance   ReasonCode = "TIME_DISTANCE"
	ReasonPreferredDay   ReasonCode = "PREFERRED_DAY"
	ReasonPreferredTime  ReasonCode = "PREFERRED_TIME"
	ReasonAvoidTime      ReasonCode = "AVOID_TIME"
	ReasonHistory        ReasonCode = "RESCHEDULE_HISTORY"
	ReasonBarberChange   ReasonCode = "BARBER_CHANGE"
	ReasonShorter        ReasonCode = "SHORTER_DURATION"
	ReasonOffPeak        ReasonCode = "OFF_PEAK"
	ReasonWeekendBlocked ReasonCode = "WEEKEND_DISALLOWED"
	ReasonCascadeShift   ReasonCode = "CASCADE_SHIFT"
)

// Reason explains one scoring factor and how much it moved each metric.
type Reason struct {
	Code              ReasonCode
	Message           string
	ConfidenceDelta   float64
	SatisfactionDelta float64
	ImpactDelta       float64
}

type BusinessImpact struct {
	RevenueDelta     float64
	UtilizationDelta float64
	RetentionRisk    domain.RetentionRisk
}

// Alternative is a runner-up slot for the same appointment.
type Alternative struct {
	StartTime    time.Time
	BarberID     string
	DurationMin  int
	Confidence   int
	Satisfaction int
	Impact       int
}

// Suggestion proposes a new slot for one appointment. Cascade suggestions
// are placeholders for appointments displaced by a primary move; CascadeOf
// names the appointment whose move displaced them.
type Suggestion struct {
	AppointmentID       string
	ClientKey           string
	OriginalStart       time.Time
	OriginalBarberID    string
	OriginalDurationMin int
	NewStartTime        time.Time
	NewBarberID         string
	NewDurationMin      int
	Confidence          int
	Satisfaction        int
	Impact              int
	Reasons             []Reason
	Business            BusinessImpact
	Alternatives        []Alternative
	CascadeOf           string
	CascadeDepth        int
}

// IsCascade reports whether s is a knock-on placeholder.
func (s *Suggestion) IsCascade() bool {
	return s.CascadeOf != ""
}

type OutcomeKind string

const (
	OutcomeSuggested   OutcomeKind = "suggested"
	OutcomeIneligible  OutcomeKind = "ineligible"
	OutcomeNoCandidate OutcomeKind = "no_candidate"
)

type IneligibleReason string

const (
	IneligibleNotice    IneligibleReason = "notice_window"
	IneligibleTerminal  IneligibleReason = "terminal_status"
	IneligibleCancelled IneligibleReason = "cancelled"
	IneligibleLimit     IneligibleReason = "reschedule_limit"
)

// Outcome records what happened to one requested appointment.
type Outcome struct {
	AppointmentID string
	Kind          OutcomeKind
	Reason        IneligibleReason
	Message       string
}

type Result struct {
	Suggestions       []Suggestion
	Cascades          []Suggestion
	Outcomes          []Outcome
	TotalImpact       int
	AvgSatisfaction   float64
	RecommendedAction domain.RecommendedAction
	Success           bool
}

// Outcome returns the outcome recorded for appointmentID.
func (r *Result) Outcome(appointmentID string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.AppointmentID == appointmentID {
			return o, true
		}
	}
	return Outcome{}, false
}

// Suggestion returns the primary suggestion for appointmentID.
func (r *Result) Suggestion(appointmentID string) (Suggestion, bool) {
	for _, s := range r.Suggestions {
		if s.AppointmentID == appointmentID {
			return s, true
		}
	}
	return Suggestion{}, false
}

const (
	autoApplyMinConfidence   = 80
	autoApplyMaxImpact       = 30
	autoApplyMinSatisfaction = 75
	presentMaxImpact         = 60
	presentMinSatisfaction   = 60
)

// TotalImpact is ten times the summed impact of every suggestion, capped
// at 100.
func TotalImpact(primary, cascades []Suggestion) int {
	sum := 0
	for _, s := range primary {
		sum += s.Impact
	}
	for _, s := range cascades {
		sum += s.Impact
	}
	return min(100, 10*sum)
}

// AverageSatisfaction averages the primary suggestions, 0 when there are none.
func AverageSatisfaction(primary []Suggestion) float64 {
	if len(primary) == 0 {
		return 0
	}
	sum := 0
	for _, s := range primary {
		sum += s.Satisfaction
	}
	return float64(sum) / float64(len(primary))
}

// DecideAction picks the aggregate action. Auto-apply needs every
// suggestion, cascades included, at or above the confidence bar.
func DecideAction(all []Suggestion, totalImpact int, avgSatisfaction float64) domain.RecommendedAction {
	confident := true
	for _, s := range all {
		if s.Confidence < autoApplyMinConfidence {
			confident = false
			break
		}
	}
	switch {
	case confident && totalImpact <= autoApplyMaxImpact && avgSatisfaction >= autoApplyMinSatisfaction:
		return domain.ActionAutoApply
	case totalImpact <= presentMaxImpact && avgSatisfaction >= presentMinSatisfaction:
		return domain.ActionPresentOptions
	default:
		return domain.ActionManualReview
	}
}

func retentionRisk(satisfaction int) domain.RetentionRisk {
	switch {
	case satisfaction >= 70:
		return domain.RetentionLow
	case satisfaction >= 50:
		return domain.RetentionMedium
	default:
		return domain.RetentionHigh
	}
}
