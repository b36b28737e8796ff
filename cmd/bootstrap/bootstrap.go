package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"clinic-scheduler/config"
	"clinic-scheduler/internal/delivery/cli"
	"clinic-scheduler/internal/infrastructure/storage"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/validator"

	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config  *config.Config
	Menu    *cli.Menu
	logFile *os.File
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger. Log lines go to a file: stdout belongs to the menus.
	log, logFile, err := setupLogger(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}
	app.logFile = logFile
	log.Info("Configuration loaded successfully")

	// Initialize storage
	store, err := storage.NewStore(cfg.Storage.DataDir, log)
	if err != nil {
		return nil, fmt.Errorf("failed to open data directory: %w", err)
	}

	// Initialize menu with all layers
	menu, err := initializeMenu(cfg, store, log)
	if err != nil {
		return nil, err
	}
	app.Menu = menu
	log.Info("Collections loaded successfully")

	return app, nil
}

// setupLogger configures a logrus logger writing JSON lines to the log file
func setupLogger(cfg *config.Config) (*logrus.Logger, *os.File, error) {
	path := filepath.Join(cfg.Storage.DataDir, cfg.Log.File)
	if err := os.MkdirAll(cfg.Storage.DataDir, 0o755); err != nil {
		return nil, nil, err
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(file)

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	return log, file, nil
}

// initializeMenu creates and wires repositories, usecases and handlers
func initializeMenu(cfg *config.Config, store *storage.Store, log *logrus.Logger) (*cli.Menu, error) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories (each loads its JSON document)
	patientRepo, err := repository.NewPatientRepository(store, cfg.Storage.PatientsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load patients: %w", err)
	}
	appointmentRepo, err := repository.NewAppointmentRepository(store, cfg.Storage.AppointmentsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	scheduleRepo, err := repository.NewScheduleRepository(store, cfg.Storage.ScheduleFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	faqRepo, err := repository.NewFAQRepository(store, cfg.Storage.FAQFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load faq: %w", err)
	}

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(log, customValidator, patientRepo)
	scheduleUsecase := usecase.NewScheduleUsecase(log, scheduleRepo, appointmentRepo)
	bookingUsecase := usecase.NewBookingUsecase(log, patientRepo, appointmentRepo, scheduleRepo)
	faqUsecase := usecase.NewFAQUsecase(log, faqRepo)

	// Initialize handlers
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	patientHandler := cli.NewPatientHandler(patientUsecase, customValidator, prompter)
	bookingHandler := cli.NewBookingHandler(bookingUsecase, scheduleUsecase, patientHandler, prompter)
	scheduleHandler := cli.NewScheduleHandler(scheduleUsecase, customValidator, prompter)
	faqHandler := cli.NewFAQHandler(faqUsecase, prompter)

	return cli.NewMenu(patientHandler, bookingHandler, scheduleHandler, faqHandler, prompter, cfg.App.Name), nil
}

// Run drives the menu loop until the operator exits
func (app *App) Run() {
	app.Menu.Run(context.Background())
	app.Close()
}

// Close releases the log file handle
func (app *App) Close() {
	if app.logFile != nil {
		app.logFile.Close()
	}
}
