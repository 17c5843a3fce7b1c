package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/chairside/internal/cli"
	"github.com/alexanderramin/chairside/internal/config"
	"github.com/alexanderramin/chairside/internal/conflict"
	"github.com/alexanderramin/chairside/internal/db"
	"github.com/alexanderramin/chairside/internal/repository"
	"github.com/alexanderramin/chairside/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	opts, err := cfg.ConflictOptions()
	if err != nil {
		return err
	}
	prefs, err := cfg.ReschedulePreferences()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	barberRepo := repository.NewSQLiteBarberRepo(database)
	apptRepo := repository.NewSQLiteAppointmentRepo(database)
	clientRepo := repository.NewSQLiteClientPreferencesRepo(database)
	rulesRepo := repository.NewSQLiteBusinessRulesRepo(database)
	runRepo := repository.NewSQLiteAnalysisRunRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	engine, err := conflict.NewEngine(opts)
	if err != nil {
		return err
	}

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Barbers:      service.NewBarberService(barberRepo, observer),
		Appointments: service.NewAppointmentService(apptRepo, barberRepo, uow, engine, observer),
		Analyzer:     service.NewAnalyzeService(apptRepo, barberRepo, runRepo, engine, observer),
		Rescheduler:  service.NewRescheduleService(apptRepo, barberRepo, clientRepo, rulesRepo, uow, engine, prefs, observer),
		Clients:      service.NewClientService(clientRepo, observer),
		Rules:        service.NewRulesService(rulesRepo, observer),
		Import:       service.NewImportService(uow, observer),
	}

	// Only offer the booking form on a real terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
