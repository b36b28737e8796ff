package cli

import (
	"context"
	"fmt"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/usecase"
)

type BookingHandler struct {
	bookingUsecase  usecase.BookingUsecase
	scheduleUsecase usecase.ScheduleUsecase
	patientHandler  *PatientHandler
	prompter        *Prompter
}

func NewBookingHandler(
	bookingUsecase usecase.BookingUsecase,
	scheduleUsecase usecase.ScheduleUsecase,
	patientHandler *PatientHandler,
	prompter *Prompter,
) *BookingHandler {
	return &BookingHandler{
		bookingUsecase:  bookingUsecase,
		scheduleUsecase: scheduleUsecase,
		patientHandler:  patientHandler,
		prompter:        prompter,
	}
}

// Book walks the operator through patient lookup, day choice and slot
// choice, then books the appointment.
func (h *BookingHandler) Book(ctx context.Context) {
	h.prompter.Println("=== Book Appointment ===")
	patient, ok := h.patientHandler.LookupPatient(ctx)
	if !ok {
		return
	}

	schedule, err := h.scheduleUsecase.ListDays(ctx)
	if err != nil || schedule.Total == 0 {
		h.prompter.Println("There are no days available for booking.")
		return
	}

	h.prompter.Println("\nDays available for booking:")
	for i, day := range schedule.Days {
		h.prompter.Printf("%d. %s (%d slots available)\n", i+1, day.Day, day.Available)
	}
	dayIndex, back := h.prompter.PickIndex("Choose the day number (0 to go back): ", schedule.Total)
	if back {
		return
	}
	chosenDay := schedule.Days[dayIndex]
	if chosenDay.Available == 0 {
		h.prompter.Println("There are no slots available on this day.")
		return
	}

	h.prompter.Printf("\nSlots available on %s:\n", chosenDay.Day)
	for i, slot := range chosenDay.Slots {
		h.prompter.Printf("%d. %s\n", i+1, slot)
	}
	slotIndex, back := h.prompter.PickIndex("Choose the slot number (0 to go back): ", len(chosenDay.Slots))
	if back {
		return
	}

	req := &dto.BookAppointmentRequest{
		CPF:  patient.CPF,
		Day:  chosenDay.Day,
		Slot: chosenDay.Slots[slotIndex],
	}
	appointment, err := h.bookingUsecase.Book(ctx, req)
	if err != nil {
		renderError(h.prompter, err)
		return
	}
	h.prompter.Printf("Appointment booked for %s at %s!\n", appointment.PatientName, appointment.Date)
}

// ViewAppointments shows the patient's record and booked appointments.
func (h *BookingHandler) ViewAppointments(ctx context.Context) {
	h.prompter.Println("=== Appointment Lookup ===")
	patient, ok := h.patientHandler.LookupPatient(ctx)
	if !ok {
		return
	}

	h.prompter.Println("\n=== Patient Details ===")
	h.prompter.Printf("Name: %s\n", patient.Name)
	h.prompter.Printf("CPF: %s\n", patient.CPF)
	h.prompter.Printf("Phone/WhatsApp: %s\n", patient.Phone)

	h.prompter.Println("\n=== Appointments ===")
	list, err := h.bookingUsecase.AppointmentsFor(ctx, patient.CPF)
	if err != nil {
		renderError(h.prompter, err)
		return
	}
	if list.Total == 0 {
		h.prompter.Println("No appointments found.")
		return
	}
	for _, appointment := range list.Appointments {
		h.prompter.Printf("- %s\n", appointment.Date)
	}
}

// Reminders presents each open appointment for a confirm-or-cancel
// decision. Confirmed entries are only dropped from this session's queue;
// cancelled entries leave the ledger and their slot returns to the
// inventory.
func (h *BookingHandler) Reminders(ctx context.Context) {
	h.prompter.Println("=== Reminders / Confirm or Cancel Appointments ===")
	patient, ok := h.patientHandler.LookupPatient(ctx)
	if !ok {
		return
	}

	list, err := h.bookingUsecase.AppointmentsFor(ctx, patient.CPF)
	if err != nil {
		renderError(h.prompter, err)
		return
	}
	if list.Total == 0 {
		h.prompter.Printf("\nNo appointments found for %s.\n", patient.Name)
		return
	}

	remaining := make([]dto.AppointmentResponse, len(list.Appointments))
	copy(remaining, list.Appointments)

	for len(remaining) > 0 {
		h.prompter.Printf("\n=== Appointments for %s ===\n", patient.Name)
		for i, appointment := range remaining {
			h.prompter.Printf("%d. %s\n", i+1, appointment.Date)
		}
		index, back := h.prompter.PickIndex("Choose an appointment to confirm/cancel (0 to go back): ", len(remaining))
		if back {
			break
		}
		appointment := remaining[index]

		decision := h.prompter.Choice(
			"\nConfirm or cancel this appointment?\n1 - Confirm\n2 - Cancel\n0 - Back\nChoose: ",
			[]string{"0", "1", "2"},
		)
		switch decision {
		case "1":
			if _, err := h.bookingUsecase.Confirm(ctx, appointment.CPF, appointment.Date); err != nil {
				renderError(h.prompter, err)
				continue
			}
			h.prompter.Printf("\nAppointment for %s confirmed!\n", patient.Name)
			remaining = append(remaining[:index], remaining[index+1:]...)
		case "2":
			if err := h.bookingUsecase.Cancel(ctx, appointment.CPF, appointment.Date); err != nil {
				renderError(h.prompter, err)
				continue
			}
			h.prompter.Printf("\nAppointment for %s cancelled.\n", patient.Name)
			remaining = append(remaining[:index], remaining[index+1:]...)
		case "0":
			continue
		}

		if len(remaining) > 0 {
			if !h.prompter.Confirm(fmt.Sprintf("\nReview the next appointment (%d left)?", len(remaining))) {
				break
			}
		}
	}

	if len(remaining) == 0 {
		h.prompter.Println("\nNo more reminders to review.")
	}
}
