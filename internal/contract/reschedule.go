package contract

import "github.com/alexanderramin/chairside/internal/app"

type RescheduleRequest = app.RescheduleRequest

func NewRescheduleRequest() RescheduleRequest {
	return app.NewRescheduleRequest()
}

type RescheduleResponse = app.RescheduleResponse

type RescheduleErrorCode = app.RescheduleErrorCode

const (
	RescheduleErrNothingToDo        RescheduleErrorCode = app.RescheduleErrNothingToDo
	RescheduleErrUnknownAppointment RescheduleErrorCode = app.RescheduleErrUnknownAppointment
	RescheduleErrApplyRefused       RescheduleErrorCode = app.RescheduleErrApplyRefused
	RescheduleErrInvalidRequest     RescheduleErrorCode = app.RescheduleErrInvalidRequest
	RescheduleErrInternal           RescheduleErrorCode = app.RescheduleErrInternal
)

type RescheduleError = app.RescheduleError
