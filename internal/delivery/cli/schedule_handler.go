package cli

import (
	"context"
	"errors"
	"strings"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/validator"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
	prompter        *Prompter
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator, prompter *Prompter) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
		prompter:        prompter,
	}
}

// Manage runs the slot administration menu: add days, add and remove
// slots, remove whole days.
func (h *ScheduleHandler) Manage(ctx context.Context) {
	for {
		h.prompter.ClearScreen()
		h.prompter.Println("=== Manage Slots ===")
		h.showSchedule(ctx)

		h.prompter.Println("\nOptions:")
		h.prompter.Println("1. Add day and slots")
		h.prompter.Println("2. Add slot to existing day")
		h.prompter.Println("3. Remove slot from a day")
		h.prompter.Println("4. Remove whole day")
		h.prompter.Println("0. Back")

		switch h.prompter.Choice("Choose: ", []string{"0", "1", "2", "3", "4"}) {
		case "0":
			return
		case "1":
			h.addDay(ctx)
		case "2":
			h.addSlotToExistingDay(ctx)
		case "3":
			h.removeSlot(ctx)
		case "4":
			h.removeDay(ctx)
		}
	}
}

func (h *ScheduleHandler) showSchedule(ctx context.Context) {
	schedule, err := h.scheduleUsecase.ListDays(ctx)
	if err != nil || schedule.Total == 0 {
		h.prompter.Println("No slots registered.")
		return
	}
	for _, day := range schedule.Days {
		if day.Available == 0 {
			h.prompter.Printf("%s: no slots\n", day.Day)
			continue
		}
		h.prompter.Printf("%s: %s\n", day.Day, strings.Join(day.Slots, ", "))
	}
}

// promptDay re-prompts for a dd/mm/yyyy date until valid; "0" backs out.
func (h *ScheduleHandler) promptDay() (string, bool) {
	for {
		h.prompter.Println("\nEnter the date (0 to go back):")
		day := h.prompter.Text("Enter the date (dd/mm/yyyy): ")
		if day == "0" {
			return "", false
		}
		if h.validator.Field(day, "clinicday") {
			return day, true
		}
		h.prompter.Println("Invalid date. Use dd/mm/yyyy with year 2025 or 2026.")
	}
}

// promptSlot re-prompts for an hh:mm grid value until valid; "0" backs out.
func (h *ScheduleHandler) promptSlot() (string, bool) {
	h.prompter.Printf("Available times: %s\n", strings.Join(entity.SlotGrid(), ", "))
	for {
		slot := h.prompter.Text("Enter the desired slot (0 to go back): ")
		if slot == "0" {
			return "", false
		}
		if h.validator.Field(slot, "clinicslot") {
			return slot, true
		}
		h.prompter.Println("Invalid slot. Use hh:mm between 08:00 and 18:30, in 30-minute steps.")
	}
}

// pickExistingDay lists registered days for a numbered choice.
func (h *ScheduleHandler) pickExistingDay(ctx context.Context) (string, bool) {
	schedule, err := h.scheduleUsecase.ListDays(ctx)
	if err != nil || schedule.Total == 0 {
		h.prompter.Println("No days registered.")
		return "", false
	}
	h.prompter.Println("\nExisting days:")
	for i, day := range schedule.Days {
		h.prompter.Printf("%d. %s\n", i+1, day.Day)
	}
	index, back := h.prompter.PickIndex("Choose the day number (0 to go back): ", schedule.Total)
	if back {
		return "", false
	}
	return schedule.Days[index].Day, true
}

func (h *ScheduleHandler) addDay(ctx context.Context) {
	h.prompter.ClearScreen()
	h.prompter.Println("=== Add Day and Slots ===")
	day, ok := h.promptDay()
	if !ok {
		return
	}
	if _, err := h.scheduleUsecase.AddDay(ctx, &dto.AddDayRequest{Day: day}); err != nil {
		renderError(h.prompter, err)
		return
	}
	h.addSlots(ctx, day)
}

func (h *ScheduleHandler) addSlotToExistingDay(ctx context.Context) {
	h.prompter.ClearScreen()
	h.prompter.Println("=== Add Slot to Existing Day ===")
	day, ok := h.pickExistingDay(ctx)
	if !ok {
		return
	}

	if current, err := h.scheduleUsecase.SlotsFor(ctx, day); err == nil && current.Available > 0 {
		h.prompter.Printf("Slots already registered on %s: %s\n", day, strings.Join(current.Slots, ", "))
	} else {
		h.prompter.Printf("No slots registered yet on %s.\n", day)
	}
	h.addSlots(ctx, day)
}

func (h *ScheduleHandler) addSlots(ctx context.Context, day string) {
	for {
		slot, ok := h.promptSlot()
		if !ok {
			return
		}
		switch err := h.scheduleUsecase.AddSlot(ctx, &dto.AddSlotRequest{Day: day, Slot: slot}); {
		case errors.Is(err, usecase.ErrSlotTaken):
			h.prompter.Println("This slot already exists.")
		case err != nil:
			renderError(h.prompter, err)
		default:
			h.prompter.Printf("Slot %s added on %s.\n", slot, day)
		}

		if !h.prompter.Confirm("Add another slot?") {
			return
		}
	}
}

func (h *ScheduleHandler) removeSlot(ctx context.Context) {
	for {
		h.prompter.ClearScreen()
		h.prompter.Println("=== Remove Slot from a Day ===")
		day, ok := h.pickExistingDay(ctx)
		if !ok {
			return
		}

		current, err := h.scheduleUsecase.SlotsFor(ctx, day)
		if err != nil {
			renderError(h.prompter, err)
			return
		}
		if current.Available == 0 {
			h.prompter.Println("No slots on this day.")
			if !h.prompter.Confirm("Try another day?") {
				return
			}
			continue
		}

		for {
			current, err = h.scheduleUsecase.SlotsFor(ctx, day)
			if err != nil || current.Available == 0 {
				break
			}
			h.prompter.Printf("\nSlots on %s:\n", day)
			for i, slot := range current.Slots {
				h.prompter.Printf("%d. %s\n", i+1, slot)
			}
			index, back := h.prompter.PickIndex("Choose the slot number to remove (0 to go back): ", current.Available)
			if back {
				break
			}
			slot := current.Slots[index]
			if err := h.scheduleUsecase.RemoveSlot(ctx, day, slot); err != nil {
				renderError(h.prompter, err)
				continue
			}
			h.prompter.Printf("Slot %s removed.\n", slot)
			if !h.prompter.Confirm("Remove another slot on this day?") {
				break
			}
		}

		if !h.prompter.Confirm("Remove a slot from another day?") {
			return
		}
	}
}

func (h *ScheduleHandler) removeDay(ctx context.Context) {
	for {
		h.prompter.ClearScreen()
		h.prompter.Println("=== Remove Whole Day ===")
		day, ok := h.pickExistingDay(ctx)
		if !ok {
			return
		}
		if h.prompter.Confirm("Are you sure you want to remove the day " + day + "?") {
			result, err := h.scheduleUsecase.RemoveDay(ctx, day)
			if err != nil {
				renderError(h.prompter, err)
			} else {
				h.prompter.Printf("Day %s removed successfully.\n", day)
				if result.OrphanedAppointments > 0 {
					h.prompter.Printf("Warning: %d booked appointment(s) still reference this day.\n", result.OrphanedAppointments)
				}
			}
		} else {
			h.prompter.Println("Removal cancelled.")
		}

		if !h.prompter.Confirm("Remove another day?") {
			return
		}
	}
}
