package repository

import (
	"fmt"
	"strings"

	"clinic-scheduler/internal/domain/entity"
	domainRepo "clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/internal/infrastructure/storage"
)

type faqDocument struct {
	Entries []entity.FAQEntry `json:"faq"`
}

type faqRepository struct {
	store   *storage.Store
	file    string
	entries []entity.FAQEntry
}

// NewFAQRepository loads the FAQ from its JSON document. A missing or
// corrupt file yields an empty FAQ.
func NewFAQRepository(store *storage.Store, file string) (domainRepo.FAQRepository, error) {
	r := &faqRepository{store: store, file: file}
	var doc faqDocument
	if err := store.Load(file, &doc); err != nil {
		return nil, err
	}
	r.entries = doc.Entries
	return r, nil
}

func (r *faqRepository) All() []entity.FAQEntry {
	out := make([]entity.FAQEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *faqRepository) Get(index int) (entity.FAQEntry, bool) {
	if index < 0 || index >= len(r.entries) {
		return entity.FAQEntry{}, false
	}
	return r.entries[index], true
}

func (r *faqRepository) QuestionExists(question string) bool {
	for _, e := range r.entries {
		if strings.EqualFold(e.Question, question) {
			return true
		}
	}
	return false
}

func (r *faqRepository) Create(entry entity.FAQEntry) error {
	r.entries = append(r.entries, entry)
	if err := r.save(); err != nil {
		r.entries = r.entries[:len(r.entries)-1]
		return err
	}
	return nil
}

func (r *faqRepository) Update(index int, entry entity.FAQEntry) error {
	if index < 0 || index >= len(r.entries) {
		return fmt.Errorf("faq index %d out of range", index)
	}
	previous := r.entries[index]
	r.entries[index] = entry
	if err := r.save(); err != nil {
		r.entries[index] = previous
		return err
	}
	return nil
}

func (r *faqRepository) Remove(index int) error {
	if index < 0 || index >= len(r.entries) {
		return fmt.Errorf("faq index %d out of range", index)
	}
	removed := r.entries[index]
	r.entries = append(r.entries[:index], r.entries[index+1:]...)
	if err := r.save(); err != nil {
		r.entries = append(r.entries[:index], append([]entity.FAQEntry{removed}, r.entries[index:]...)...)
		return err
	}
	return nil
}

func (r *faqRepository) save() error {
	doc := faqDocument{Entries: r.entries}
	if doc.Entries == nil {
		doc.Entries = []entity.FAQEntry{}
	}
	return r.store.Save(r.file, doc)
}
