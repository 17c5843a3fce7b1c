package app

import (
	"time"

	"github.com/alexanderramin/chairside/internal/domain"
	"github.com/alexanderramin/chairside/internal/reschedule"
)

// RescheduleRequest selects the appointments to move: the given ids, or
// every active appointment on Date whose analysis reports a conflict.
type RescheduleRequest struct {
	Date           *time.Time
	AppointmentIDs []string
	Apply          bool
	Force          bool
	Now            *time.Time
}

func NewRescheduleRequest() RescheduleRequest {
	return RescheduleRequest{}
}

type RescheduleResponse struct {
	GeneratedAt  time.Time
	Result       *reschedule.Result
	Appointments []domain.Appointment
	Barbers      []domain.Barber
	Applied      bool
	AppliedIDs   []string
}

type RescheduleErrorCode string

const (
	RescheduleErrNothingToDo        RescheduleErrorCode = "RESCHEDULE_NOTHING_TO_DO"
	RescheduleErrUnknownAppointment RescheduleErrorCode = "RESCHEDULE_UNKNOWN_APPOINTMENT"
	RescheduleErrApplyRefused       RescheduleErrorCode = "RESCHEDULE_APPLY_REFUSED"
	RescheduleErrInvalidRequest     RescheduleErrorCode = "RESCHEDULE_INVALID_REQUEST"
	RescheduleErrInternal           RescheduleErrorCode = "RESCHEDULE_INTERNAL_ERROR"
)

type RescheduleError struct {
	Code    RescheduleErrorCode
	Message string
}

func (e *RescheduleError) Error() string {
	return string(e.Code) + ": " + e.Message
}
