package repository

import "clinic-scheduler/internal/domain/entity"

type PatientRepository interface {
	All() []entity.Patient
	FindByCPF(cpf string) *entity.Patient
	Create(patient entity.Patient) error
}
