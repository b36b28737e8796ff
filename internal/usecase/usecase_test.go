package usecase

import (
	"io"
	"testing"

	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
	"clinic-scheduler/internal/repository"
	"clinic-scheduler/pkg/validator"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// testDeps wires real JSON-file repositories over a temp directory so
// usecase tests exercise the same persistence path as the application.
type testDeps struct {
	patientRepo     domainRepo.PatientRepository
	appointmentRepo domainRepo.AppointmentRepository
	scheduleRepo    domainRepo.ScheduleRepository
	faqRepo         domainRepo.FAQRepository

	patients PatientUsecase
	schedule ScheduleUsecase
	booking  BookingUsecase
	faq      FAQUsecase
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	store, err := storage.NewStore(t.TempDir(), log)
	require.NoError(t, err)

	patientRepo, err := repository.NewPatientRepository(store, "pacientes.json")
	require.NoError(t, err)
	appointmentRepo, err := repository.NewAppointmentRepository(store, "agendamentos.json")
	require.NoError(t, err)
	scheduleRepo, err := repository.NewScheduleRepository(store, "horarios.json")
	require.NoError(t, err)
	faqRepo, err := repository.NewFAQRepository(store, "faq.json")
	require.NoError(t, err)

	v := validator.NewValidator()
	return &testDeps{
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
		faqRepo:         faqRepo,
		patients:        NewPatientUsecase(log, v, patientRepo),
		schedule:        NewScheduleUsecase(log, scheduleRepo, appointmentRepo),
		booking:         NewBookingUsecase(log, patientRepo, appointmentRepo, scheduleRepo),
		faq:             NewFAQUsecase(log, faqRepo),
	}
}

func (d *testDeps) mustRegisterPatient(t *testing.T, name, cpf string) {
	t.Helper()
	err := d.patientRepo.Create(entity.Patient{Name: name, CPF: cpf, Phone: "+55 (11) 98765-4321"})
	require.NoError(t, err, "seed patient")
}

func (d *testDeps) mustAddDay(t *testing.T, day string, slots ...string) {
	t.Helper()
	inventory := d.scheduleRepo.Inventory()
	inventory.AddDay(day)
	for _, slot := range slots {
		inventory.AddSlot(day, slot)
	}
	require.NoError(t, d.scheduleRepo.Save(), "seed schedule")
}
