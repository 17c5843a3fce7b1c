package contract

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAnalyzeRequest_SetsDefaults(t *testing.T) {
	req := NewAnalyzeRequest()

	assert.True(t, req.Record)
	assert.Empty(t, req.AppointmentID)
	assert.Nil(t, req.Candidate)
	assert.Nil(t, req.Now)
}

func TestNewRescheduleRequest_SetsDefaults(t *testing.T) {
	req := NewRescheduleRequest()

	assert.False(t, req.Apply)
	assert.False(t, req.Force)
	assert.Nil(t, req.Date)
	assert.Nil(t, req.AppointmentIDs)
}

func TestAnalyzeError_Format(t *testing.T) {
	var err error = &AnalyzeError{Code: AnalyzeErrUnknownAppointment, Message: "appointment x not found"}

	assert.Equal(t, "ANALYZE_UNKNOWN_APPOINTMENT: appointment x not found", err.Error())

	var ae *AnalyzeError
	assert.True(t, errors.As(err, &ae))
	assert.Equal(t, AnalyzeErrUnknownAppointment, ae.Code)
}

func TestRescheduleError_Format(t *testing.T) {
	err := &RescheduleError{Code: RescheduleErrApplyRefused, Message: "recommended action is manual_review"}
	assert.Equal(t, "RESCHEDULE_APPLY_REFUSED: recommended action is manual_review", err.Error())
}
