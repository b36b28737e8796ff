package entity

import "strings"

// Appointment links a patient to a booked (day, slot) pair. The patient
// name is denormalized for display. Date is the composite "dd/mm/yyyy hh:mm"
// string; (CPF, Date) is unique across the ledger.
type Appointment struct {
	CPF  string `json:"cpf"`
	Name string `json:"nome"`
	Date string `json:"data"`
}

// Day returns the calendar-day half of the composite date.
func (a Appointment) Day() string {
	day, _ := SplitCompositeDate(a.Date)
	return day
}

// Slot returns the time-of-day half of the composite date.
func (a Appointment) Slot() string {
	_, slot := SplitCompositeDate(a.Date)
	return slot
}

// CompositeDate joins a day and a slot into the ledger's date key.
func CompositeDate(day, slot string) string {
	return day + " " + slot
}

// SplitCompositeDate splits a ledger date key back into day and slot.
func SplitCompositeDate(date string) (day, slot string) {
	day, slot, _ = strings.Cut(date, " ")
	return day, slot
}
