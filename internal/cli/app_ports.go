package cli

import "github.com/alexanderramin/chairside/internal/app"

func (a *App) bookUseCase() app.BookAppointmentUseCase {
	if a.Booking != nil {
		return a.Booking
	}
	return a.Appointments
}

func (a *App) checkUseCase() app.AnalyzeUseCase {
	if a.Check != nil {
		return a.Check
	}
	return a.Analyzer
}

func (a *App) rescheduleUseCase() app.RescheduleUseCase {
	if a.Reschedule != nil {
		return a.Reschedule
	}
	return a.Rescheduler
}

func (a *App) importUseCase() app.ImportSnapshotUseCase {
	if a.ImportSnapshot != nil {
		return a.ImportSnapshot
	}
	return a.Import
}
