package cli

import (
	"time"

	"github.com/alexanderramin/chairside/internal/app"
	"github.com/alexanderramin/chairside/internal/service"
	"github.com/spf13/cobra"
)

// App holds the services the commands run against.
type App struct {
	Barbers      service.BarberService
	Appointments service.AppointmentService
	Analyzer     service.AnalyzeService
	Rescheduler  service.RescheduleService
	Clients      service.ClientService
	Rules        service.RulesService
	Import       service.ImportService

	// Optional use-case overrides; the services above are used when nil.
	Booking        app.BookAppointmentUseCase
	Check          app.AnalyzeUseCase
	Reschedule     app.RescheduleUseCase
	ImportSnapshot app.ImportSnapshotUseCase

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool

	// Now pins the clock for notice-window checks. Nil means time.Now.
	Now func() time.Time
}

// NewRootCmd creates the top-level "chairside" command.
func NewRootCmd(a *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "chairside",
		Short:         "Booking conflict checker and auto-rescheduler for a barbershop",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newBarberCmd(a),
		newAppointmentCmd(a),
		newCheckCmd(a),
		newRescheduleCmd(a),
		newClientCmd(a),
		newRulesCmd(a),
		newImportCmd(a),
	)

	return root
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now()
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
