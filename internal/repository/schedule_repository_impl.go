package repository

import (
	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type scheduleRepository struct {
	store     *storage.Store
	file      string
	inventory *entity.SlotInventory
}

// NewScheduleRepository loads the slot inventory from its JSON document.
// Unlike the other documents, the inventory file is a bare day-keyed
// object with no wrapping key; that shape comes straight from the stored
// format and is preserved on save.
func NewScheduleRepository(store *storage.Store, file string) (domainRepo.ScheduleRepository, error) {
	r := &scheduleRepository{store: store, file: file, inventory: entity.NewSlotInventory()}
	if err := store.Load(file, r.inventory); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *scheduleRepository) Inventory() *entity.SlotInventory {
	return r.inventory
}

func (r *scheduleRepository) Save() error {
	return r.store.Save(r.file, r.inventory)
}
