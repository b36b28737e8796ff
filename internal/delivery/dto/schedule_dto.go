package dto

// Request DTOs

type AddDayRequest struct {
	Day   string   `json:"day" validate:"required,clinicday"`
	Slots []string `json:"slots" validate:"dive,clinicslot"`
}

type AddSlotRequest struct {
	Day  string `json:"day" validate:"required"`
	Slot string `json:"slot" validate:"required,clinicslot"`
}

// Response DTOs

type ScheduleDayResponse struct {
	Day       string   `json:"day"`
	Slots     []string `json:"slots"`
	Available int      `json:"available"`
}

type ScheduleListResponse struct {
	Days  []ScheduleDayResponse `json:"days"`
	Total int                   `json:"total"`
}

type RemoveDayResponse struct {
	Day string `json:"day"`
	// Appointments still referencing the removed day. They stay in the
	// ledger; the operator is told how many were left dangling.
	OrphanedAppointments int `json:"orphaned_appointments"`
}
