package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type patientsDocument struct {
	Patients []entity.Patient `json:"pacientes"`
}

type patientRepository struct {
	store    *storage.Store
	file     string
	patients []entity.Patient
}

// NewPatientRepository loads the patient directory from its JSON document.
// A missing or corrupt file yields an empty directory.
func NewPatientRepository(store *storage.Store, file string) (domainRepo.PatientRepository, error) {
	r := &patientRepository{store: store, file: file}
	var doc patientsDocument
	if err := store.Load(file, &doc); err != nil {
		return nil, err
	}
	r.patients = doc.Patients
	return r, nil
}

func (r *patientRepository) All() []entity.Patient {
	out := make([]entity.Patient, len(r.patients))
	copy(out, r.patients)
	return out
}

func (r *patientRepository) FindByCPF(cpf string) *entity.Patient {
	for i := range r.patients {
		if r.patients[i].CPF == cpf {
			p := r.patients[i]
			return &p
		}
	}
	return nil
}

func (r *patientRepository) Create(patient entity.Patient) error {
	r.patients = append(r.patients, patient)
	if err := r.save(); err != nil {
		r.patients = r.patients[:len(r.patients)-1]
		return err
	}
	return nil
}

func (r *patientRepository) save() error {
	doc := patientsDocument{Patients: r.patients}
	if doc.Patients == nil {
		doc.Patients = []entity.Patient{}
	}
	return r.store.Save(r.file, doc)
}
