package app

import (
	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/domain"
)

// BookRequest books Appointment after a conflict check. High and critical
// conflicts refuse the booking unless Force is set.
type BookRequest struct {
	Appointment *domain.Appointment
	Force       bool
}

type BookResponse struct {
	Appointment *domain.Appointment
	Analysis    conflict.Analysis
	Forced      bool
}
