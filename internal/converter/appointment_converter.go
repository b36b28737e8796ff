package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to a DTO, splitting
// the composite date into its day and slot halves for display.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}
	day, slot := entity.SplitCompositeDate(appointment.Date)
	return &dto.AppointmentResponse{
		CPF:         appointment.CPF,
		PatientName: appointment.Name,
		Day:         day,
		Slot:        slot,
		Date:        appointment.Date,
	}
}

// AppointmentsToResponses converts a slice of Appointment entities to DTOs.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		responses[i] = *AppointmentToResponse(&appointment)
	}
	return responses
}
