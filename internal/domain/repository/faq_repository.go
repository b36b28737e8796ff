package repository

import "clinic-scheduler/internal/domain/entity"

type FAQRepository interface {
	All() []entity.FAQEntry
	Get(index int) (entity.FAQEntry, bool)
	QuestionExists(question string) bool
	Create(entry entity.FAQEntry) error
	Update(index int, entry entity.FAQEntry) error
	Remove(index int) error
}
