package app

import (
	"time"

	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
)

// AnalyzeRequest checks either a stored appointment (AppointmentID) or a
// proposed one (Candidate). Exactly one must be set.
type AnalyzeRequest struct {
	AppointmentID string
	Candidate     *domain.Appointment
	Record        bool
	Now           *time.Time
}

func NewAnalyzeRequest() AnalyzeRequest {
	return AnalyzeRequest{Record: true}
}

type AnalyzeResponse struct {
	Analysis conflict.Analysis
	Barbers  []domain.Barber
	RunID    string
}

type AnalyzeErrorCode string

const (
	AnalyzeErrUnknownAppointment AnalyzeErrorCode = "ANALYZE_UNKNOWN_APPOINTMENT"
	AnalyzeErrInvalidCandidate   AnalyzeErrorCode = "ANALYZE_INVALID_CANDIDATE"
	AnalyzeErrBookingBlocked     AnalyzeErrorCode = "ANALYZE_BOOKING_BLOCKED"
	AnalyzeErrInternal           AnalyzeErrorCode = "ANALYZE_INTERNAL_ERROR"
)

type AnalyzeError struct {
	Code    AnalyzeErrorCode
	Message string
	// Conflicts is set when a booking was refused.
	Conflicts []conflict.Conflict
}

func (e *AnalyzeError) Error() string {
	return string(e.Code) + ": " + e.Message
}
