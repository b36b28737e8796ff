package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type appointmentsDocument struct {
	Appointments []entity.Appointment `json:"agendamentos"`
}

type appointmentRepository struct {
	store        *storage.Store
	file         string
	appointments []entity.Appointment
}

// NewAppointmentRepository loads the appointment ledger from its JSON
// document. A missing or corrupt file yields an empty ledger.
func NewAppointmentRepository(store *storage.Store, file string) (domainRepo.AppointmentRepository, error) {
	r := &appointmentRepository{store: store, file: file}
	var doc appointmentsDocument
	if err := store.Load(file, &doc); err != nil {
		return nil, err
	}
	r.appointments = doc.Appointments
	return r, nil
}

func (r *appointmentRepository) All() []entity.Appointment {
	out := make([]entity.Appointment, len(r.appointments))
	copy(out, r.appointments)
	return out
}

func (r *appointmentRepository) FindByCPF(cpf string) []entity.Appointment {
	var out []entity.Appointment
	for _, a := range r.appointments {
		if a.CPF == cpf {
			out = append(out, a)
		}
	}
	return out
}

func (r *appointmentRepository) Exists(cpf, date string) bool {
	for _, a := range r.appointments {
		if a.CPF == cpf && a.Date == date {
			return true
		}
	}
	return false
}

func (r *appointmentRepository) CountByDay(day string) int {
	n := 0
	for _, a := range r.appointments {
		if a.Day() == day {
			n++
		}
	}
	return n
}

func (r *appointmentRepository) Create(appointment entity.Appointment) error {
	r.appointments = append(r.appointments, appointment)
	if err := r.save(); err != nil {
		r.appointments = r.appointments[:len(r.appointments)-1]
		return err
	}
	return nil
}

func (r *appointmentRepository) Delete(cpf, date string) (bool, error) {
	for i, a := range r.appointments {
		if a.CPF == cpf && a.Date == date {
			removed := r.appointments[i]
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			if err := r.save(); err != nil {
				r.appointments = append(r.appointments[:i], append([]entity.Appointment{removed}, r.appointments[i:]...)...)
				return false, err
			}
			return true, nil
		}
	}
	return false, nil
}

func (r *appointmentRepository) save() error {
	doc := appointmentsDocument{Appointments: r.appointments}
	if doc.Appointments == nil {
		doc.Appointments = []entity.Appointment{}
	}
	return r.store.Save(r.file, doc)
}
