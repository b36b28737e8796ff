package converter

import (
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
)

// InventoryToResponse converts the slot inventory into its display form:
// days in insertion order, each day's slots sorted ascending.
func InventoryToResponse(inventory *entity.SlotInventory) *dto.ScheduleListResponse {
	days := inventory.Days()
	responses := make([]dto.ScheduleDayResponse, len(days))
	for i, day := range days {
		slots, _ := inventory.SortedSlotsFor(day)
		responses[i] = dto.ScheduleDayResponse{
			Day:       day,
			Slots:     slots,
			Available: len(slots),
		}
	}
	return &dto.ScheduleListResponse{
		Days:  responses,
		Total: len(responses),
	}
}
