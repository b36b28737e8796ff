package usecase

import (
	"context"
	"fmt"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/pkg/apperrors"

	"github.com/sirupsen/logrus"
)

var (
	ErrNoAvailability      = fmt.Errorf("%w: no days with open slots", apperrors.ErrUnavailable)
	ErrSlotUnavailable     = fmt.Errorf("%w: slot is not available on this day", apperrors.ErrUnavailable)
	ErrDuplicateBooking    = fmt.Errorf("%w: patient already has an appointment at this day and time", apperrors.ErrConflict)
	ErrAppointmentNotFound = fmt.Errorf("%w: appointment not found", apperrors.ErrNotFound)
)

type BookingUsecase interface {
	Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	AppointmentsFor(ctx context.Context, cpf string) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, cpf, date string) error
	Confirm(ctx context.Context, cpf, date string) (*dto.AppointmentResponse, error)
}

type bookingUsecase struct {
	log             *logrus.Logger
	patientRepo     repository.PatientRepository
	appointmentRepo repository.AppointmentRepository
	scheduleRepo    repository.ScheduleRepository
}

func NewBookingUsecase(
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	appointmentRepo repository.AppointmentRepository,
	scheduleRepo repository.ScheduleRepository,
) BookingUsecase {
	return &bookingUsecase{
		log:             log,
		patientRepo:     patientRepo,
		appointmentRepo: appointmentRepo,
		scheduleRepo:    scheduleRepo,
	}
}

// Book moves one slot from available to booked.
//
// Flow:
// 1. Patient must exist
// 2. Day must exist with at least one open slot
// 3. The chosen slot must be among them
// 4. No duplicate ledger entry for (patient, day+slot)
// 5. Append the ledger entry, remove the slot (the day key stays even
//    when it becomes empty)
// 6. Persist ledger then inventory; if the inventory save fails the
//    ledger entry is compensated away so the two collections stay in step
func (u *bookingUsecase) Book(ctx context.Context, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	patient := u.patientRepo.FindByCPF(req.CPF)
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	inventory := u.scheduleRepo.Inventory()
	if inventory.Empty() {
		return nil, ErrNoAvailability
	}
	if !inventory.HasDay(req.Day) || inventory.SlotCount(req.Day) == 0 {
		return nil, ErrNoAvailability
	}
	if !inventory.HasSlot(req.Day, req.Slot) {
		return nil, ErrSlotUnavailable
	}

	date := entity.CompositeDate(req.Day, req.Slot)
	if u.appointmentRepo.Exists(req.CPF, date) {
		return nil, ErrDuplicateBooking
	}

	appointment := entity.Appointment{
		CPF:  patient.CPF,
		Name: patient.Name,
		Date: date,
	}
	if err := u.appointmentRepo.Create(appointment); err != nil {
		u.log.Warnf("Failed to persist appointment %s %s: %+v", req.CPF, date, err)
		return nil, apperrors.Storagef("save appointments: %v", err)
	}

	inventory.RemoveSlot(req.Day, req.Slot)
	if err := u.scheduleRepo.Save(); err != nil {
		u.log.Errorf("Failed to persist schedule after booking, compensating ledger: %+v", err)
		inventory.AddSlot(req.Day, req.Slot)
		if _, delErr := u.appointmentRepo.Delete(req.CPF, date); delErr != nil {
			u.log.Errorf("Failed to compensate ledger entry %s %s: %+v", req.CPF, date, delErr)
		}
		return nil, apperrors.Storagef("save schedule: %v", err)
	}

	u.log.Infof("Appointment booked: cpf=%s, date=%q", patient.CPF, date)
	return converter.AppointmentToResponse(&appointment), nil
}

// AppointmentsFor lists the patient's ledger entries in ledger order. An
// empty list is a valid outcome, not an error.
func (u *bookingUsecase) AppointmentsFor(ctx context.Context, cpf string) (*dto.AppointmentListResponse, error) {
	if u.patientRepo.FindByCPF(cpf) == nil {
		return nil, ErrPatientNotFound
	}
	appointments := u.appointmentRepo.FindByCPF(cpf)
	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}

// Cancel removes the ledger entry and returns its slot to the inventory
// under its original day, re-creating the day if an administrator removed
// it after the booking was made.
func (u *bookingUsecase) Cancel(ctx context.Context, cpf, date string) error {
	if !u.appointmentRepo.Exists(cpf, date) {
		return ErrAppointmentNotFound
	}

	if _, err := u.appointmentRepo.Delete(cpf, date); err != nil {
		u.log.Warnf("Failed to persist ledger after cancelling %s %s: %+v", cpf, date, err)
		return apperrors.Storagef("save appointments: %v", err)
	}

	day, slot := entity.SplitCompositeDate(date)
	inventory := u.scheduleRepo.Inventory()
	inventory.AddDay(day)
	inventory.AddSlot(day, slot)
	if err := u.scheduleRepo.Save(); err != nil {
		u.log.Errorf("Failed to persist schedule after cancelling %s %s: %+v", cpf, date, err)
		return apperrors.Storagef("save schedule: %v", err)
	}

	u.log.Infof("Appointment cancelled: cpf=%s, date=%q", cpf, date)
	return nil
}

// Confirm verifies the entry exists and mutates nothing; the reminder
// session simply stops presenting it.
func (u *bookingUsecase) Confirm(ctx context.Context, cpf, date string) (*dto.AppointmentResponse, error) {
	for _, appointment := range u.appointmentRepo.FindByCPF(cpf) {
		if appointment.Date == date {
			u.log.Infof("Appointment confirmed: cpf=%s, date=%q", cpf, date)
			return converter.AppointmentToResponse(&appointment), nil
		}
	}
	return nil, ErrAppointmentNotFound
}
