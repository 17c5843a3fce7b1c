package domain

import "time"

// AnalysisRun is the stored summary of one conflict check.
type AnalysisRun struct {
	ID            string
	AppointmentID string
	BarberID      string
	StartTime     time.Time
	DurationMin   int
	RiskScore     int
	ConflictCount int
	TopStrategy   string
	CreatedAt     time.Time
}
