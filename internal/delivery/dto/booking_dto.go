package dto

// Request DTOs

type BookAppointmentRequest struct {
	CPF  string `json:"cpf" validate:"required,cpf"`
	Day  string `json:"day" validate:"required,clinicday"`
	Slot string `json:"slot" validate:"required,clinicslot"`
}

// Response DTOs

type AppointmentResponse struct {
	CPF         string `json:"cpf"`
	PatientName string `json:"patient_name"`
	Day         string `json:"day"`
	Slot        string `json:"slot"`
	Date        string `json:"date"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
