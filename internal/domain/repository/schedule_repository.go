package repository

import "clinic-scheduler/internal/domain/entity"

// ScheduleRepository owns the in-memory slot inventory and its persistence.
// Workflows mutate the inventory directly and call Save to write it back.
type ScheduleRepository interface {
	Inventory() *entity.SlotInventory
	Save() error
}
