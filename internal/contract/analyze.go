package contract

import "github.com/alexanderramin/chairside/internal/app"

type AnalyzeRequest = app.AnalyzeRequest

func NewAnalyzeRequest() AnalyzeRequest {
	return app.NewAnalyzeRequest()
}

type AnalyzeResponse = app.AnalyzeResponse

type AnalyzeErrorCode = app.AnalyzeErrorCode

const (
	AnalyzeErrUnknownAppointment AnalyzeErrorCode = app.AnalyzeErrUnknownAppointment
	AnalyzeErrInvalidCandidate   AnalyzeErrorCode = app.AnalyzeErrInvalidCandidate
	AnalyzeErrBookingBlocked     AnalyzeErrorCode = app.AnalyzeErrBookingBlocked
	AnalyzeErrInternal           AnalyzeErrorCode = app.AnalyzeErrInternal
)

type AnalyzeError = app.AnalyzeError

type BookRequest = app.BookRequest

type BookResponse = app.BookResponse

type ImportResult = app.ImportResult
