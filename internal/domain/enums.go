package domain

type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusNoShow    AppointmentStatus = "no_show"
)

// ValidAppointmentStatuses is the canonical set of accepted status strings.
var ValidAppointmentStatuses = map[string]bool{
	"scheduled": true, "completed": true, "cancelled": true, "no_show": true,
}

// Blocking reports whether an appointment in this status still occupies the
// barber's chair.
func (s AppointmentStatus) Blocking() bool {
	return s != StatusCancelled && s != StatusNoShow
}

// Terminal reports whether the appointment can no longer be moved.
func (s AppointmentStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusNoShow
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// Weight is the risk-score contribution of one conflict of this severity.
func (s Severity) Weight() int {
	switch s {
	case SeverityCritical:
		return 100
	case SeverityHigh:
		return 50
	case SeverityMedium:
		return 25
	case SeverityLow:
		return 10
	default:
		return 0
	}
}

type ConflictKind string

const (
	ConflictTimeOverlap       ConflictKind = "time_overlap"
	ConflictBarberUnavailable ConflictKind = "barber_unavailable"
	ConflictDoubleBooking     ConflictKind = "double_booking"
	ConflictInsufficientBuf   ConflictKind = "insufficient_buffer"
	ConflictWorkingHours      ConflictKind = "working_hours_violation"
	ConflictBreakTime         ConflictKind = "break_time_conflict"
	ConflictResource          ConflictKind = "resource_conflict"
)

type StrategyKind string

const (
	StrategyReschedule      StrategyKind = "reschedule"
	StrategyReassignBarber  StrategyKind = "reassign_barber"
	StrategyAdjustDuration  StrategyKind = "adjust_duration"
	StrategySplit           StrategyKind = "split_appointment"
	StrategyBufferAdjust    StrategyKind = "buffer_adjustment"
	StrategyManualIntervene StrategyKind = "manual_intervention"
)

// ValidStrategyKinds is the canonical set of accepted strategy strings.
var ValidStrategyKinds = map[string]bool{
	"reschedule": true, "reassign_barber": true, "adjust_duration": true,
	"split_appointment": true, "buffer_adjustment": true, "manual_intervention": true,
}

type ImpactTier string

const (
	ImpactMinimal     ImpactTier = "minimal"
	ImpactModerate    ImpactTier = "moderate"
	ImpactSignificant ImpactTier = "significant"
)

type RecommendedAction string

const (
	ActionAutoApply      RecommendedAction = "auto_apply"
	ActionPresentOptions RecommendedAction = "present_options"
	ActionManualReview   RecommendedAction = "manual_review"
)

type RetentionRisk string

const (
	RetentionLow    RetentionRisk = "low"
	RetentionMedium RetentionRisk = "medium"
	RetentionHigh   RetentionRisk = "high"
)
