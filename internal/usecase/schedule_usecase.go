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
	ErrInvalidDay   = fmt.Errorf("%w: day must be a valid dd/mm/yyyy date in 2025 or 2026", apperrors.ErrValidation)
	ErrInvalidSlot  = fmt.Errorf("%w: slot must be on the 30-minute grid between 08:00 and 18:30", apperrors.ErrValidation)
	ErrDayNotFound  = fmt.Errorf("%w: day is not registered", apperrors.ErrNotFound)
	ErrSlotNotFound = fmt.Errorf("%w: slot is not registered on this day", apperrors.ErrNotFound)
	ErrSlotTaken    = fmt.Errorf("%w: slot is already registered on this day", apperrors.ErrConflict)
)

type ScheduleUsecase interface {
	AddDay(ctx context.Context, req *dto.AddDayRequest) (*dto.ScheduleDayResponse, error)
	AddSlot(ctx context.Context, req *dto.AddSlotRequest) error
	RemoveSlot(ctx context.Context, day, slot string) error
	RemoveDay(ctx context.Context, day string) (*dto.RemoveDayResponse, error)
	ListDays(ctx context.Context) (*dto.ScheduleListResponse, error)
	SlotsFor(ctx context.Context, day string) (*dto.ScheduleDayResponse, error)
}

type scheduleUsecase struct {
	log             *logrus.Logger
	scheduleRepo    repository.ScheduleRepository
	appointmentRepo repository.AppointmentRepository
}

func NewScheduleUsecase(
	log *logrus.Logger,
	scheduleRepo repository.ScheduleRepository,
	appointmentRepo repository.AppointmentRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		log:             log,
		scheduleRepo:    scheduleRepo,
		appointmentRepo: appointmentRepo,
	}
}

// AddDay registers a day, optionally with initial slots. Adding a day that
// already exists is a no-op on the key; the initial slots are still merged
// in with set semantics.
func (u *scheduleUsecase) AddDay(ctx context.Context, req *dto.AddDayRequest) (*dto.ScheduleDayResponse, error) {
	if !entity.ValidDay(req.Day) {
		return nil, ErrInvalidDay
	}
	for _, slot := range req.Slots {
		if !entity.ValidSlot(slot) {
			return nil, ErrInvalidSlot
		}
	}

	inventory := u.scheduleRepo.Inventory()
	inventory.AddDay(req.Day)
	for _, slot := range req.Slots {
		inventory.AddSlot(req.Day, slot)
	}

	if err := u.scheduleRepo.Save(); err != nil {
		u.log.Warnf("Failed to persist schedule after adding day %s: %+v", req.Day, err)
		return nil, apperrors.Storagef("save schedule: %v", err)
	}

	slots, _ := inventory.SortedSlotsFor(req.Day)
	return &dto.ScheduleDayResponse{Day: req.Day, Slots: slots, Available: len(slots)}, nil
}

func (u *scheduleUsecase) AddSlot(ctx context.Context, req *dto.AddSlotRequest) error {
	inventory := u.scheduleRepo.Inventory()
	if !inventory.HasDay(req.Day) {
		return ErrDayNotFound
	}
	if !entity.ValidSlot(req.Slot) {
		return ErrInvalidSlot
	}
	if !inventory.AddSlot(req.Day, req.Slot) {
		return ErrSlotTaken
	}

	if err := u.scheduleRepo.Save(); err != nil {
		u.log.Warnf("Failed to persist schedule after adding slot %s %s: %+v", req.Day, req.Slot, err)
		inventory.RemoveSlot(req.Day, req.Slot)
		return apperrors.Storagef("save schedule: %v", err)
	}
	return nil
}

func (u *scheduleUsecase) RemoveSlot(ctx context.Context, day, slot string) error {
	inventory := u.scheduleRepo.Inventory()
	if !inventory.HasDay(day) {
		return ErrDayNotFound
	}
	if !inventory.RemoveSlot(day, slot) {
		return ErrSlotNotFound
	}

	if err := u.scheduleRepo.Save(); err != nil {
		u.log.Warnf("Failed to persist schedule after removing slot %s %s: %+v", day, slot, err)
		inventory.AddSlot(day, slot)
		return apperrors.Storagef("save schedule: %v", err)
	}
	return nil
}

// RemoveDay drops the day and every slot on it. Booked appointments that
// reference the day are not touched; their count is reported so the
// operator knows they now dangle.
func (u *scheduleUsecase) RemoveDay(ctx context.Context, day string) (*dto.RemoveDayResponse, error) {
	inventory := u.scheduleRepo.Inventory()
	slots, ok := inventory.SlotsFor(day)
	if !ok {
		return nil, ErrDayNotFound
	}
	inventory.RemoveDay(day)

	if err := u.scheduleRepo.Save(); err != nil {
		u.log.Warnf("Failed to persist schedule after removing day %s: %+v", day, err)
		inventory.AddDay(day)
		for _, slot := range slots {
			inventory.AddSlot(day, slot)
		}
		return nil, apperrors.Storagef("save schedule: %v", err)
	}

	orphaned := u.appointmentRepo.CountByDay(day)
	if orphaned > 0 {
		u.log.Warnf("Day %s removed with %d appointment(s) still referencing it", day, orphaned)
	}
	return &dto.RemoveDayResponse{Day: day, OrphanedAppointments: orphaned}, nil
}

func (u *scheduleUsecase) ListDays(ctx context.Context) (*dto.ScheduleListResponse, error) {
	return converter.InventoryToResponse(u.scheduleRepo.Inventory()), nil
}

func (u *scheduleUsecase) SlotsFor(ctx context.Context, day string) (*dto.ScheduleDayResponse, error) {
	inventory := u.scheduleRepo.Inventory()
	slots, ok := inventory.SortedSlotsFor(day)
	if !ok {
		return nil, ErrDayNotFound
	}
	return &dto.ScheduleDayResponse{Day: day, Slots: slots, Available: len(slots)}, nil
}
