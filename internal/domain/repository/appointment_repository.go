package repository

import "clinic-scheduler/internal/domain/entity"

type AppointmentRepository interface {
	All() []entity.Appointment
	FindByCPF(cpf string) []entity.Appointment
	Exists(cpf, date string) bool
	CountByDay(day string) int
	Create(appointment entity.Appointment) error
	Delete(cpf, date string) (bool, error)
}
