package usecase

import (
	"context"
	"fmt"
	"strings"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/pkg/apperrors"

	"github.com/sirupsen/logrus"
)

var (
	ErrQuestionExists   = fmt.Errorf("%w: this question already exists in the FAQ", apperrors.ErrConflict)
	ErrFAQEntryNotFound = fmt.Errorf("%w: no FAQ entry at this position", apperrors.ErrNotFound)
	ErrEmptyQuestion    = fmt.Errorf("%w: question must not be empty", apperrors.ErrValidation)
	ErrEmptyAnswer      = fmt.Errorf("%w: answer must not be empty", apperrors.ErrValidation)
)

type FAQUsecase interface {
	List(ctx context.Context) (*dto.FAQListResponse, error)
	Add(ctx context.Context, req *dto.AddFAQRequest) error
	Update(ctx context.Context, index int, req *dto.UpdateFAQRequest) error
	Remove(ctx context.Context, index int) error
}

type faqUsecase struct {
	log     *logrus.Logger
	faqRepo repository.FAQRepository
}

func NewFAQUsecase(log *logrus.Logger, faqRepo repository.FAQRepository) FAQUsecase {
	return &faqUsecase{
		log:     log,
		faqRepo: faqRepo,
	}
}

func (u *faqUsecase) List(ctx context.Context) (*dto.FAQListResponse, error) {
	entries := u.faqRepo.All()
	return &dto.FAQListResponse{
		Entries: converter.FAQToResponses(entries),
		Total:   len(entries),
	}, nil
}

func (u *faqUsecase) Add(ctx context.Context, req *dto.AddFAQRequest) error {
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	if question == "" {
		return ErrEmptyQuestion
	}
	if answer == "" {
		return ErrEmptyAnswer
	}
	if u.faqRepo.QuestionExists(question) {
		return ErrQuestionExists
	}

	if err := u.faqRepo.Create(entity.FAQEntry{Question: question, Answer: answer}); err != nil {
		u.log.Warnf("Failed to persist FAQ entry: %+v", err)
		return apperrors.Storagef("save faq: %v", err)
	}
	return nil
}

// Update replaces an entry's question and/or answer; an empty request
// field keeps the current value. Changing the question to one that
// already belongs to another entry is rejected.
func (u *faqUsecase) Update(ctx context.Context, index int, req *dto.UpdateFAQRequest) error {
	current, ok := u.faqRepo.Get(index)
	if !ok {
		return ErrFAQEntryNotFound
	}

	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(req.Answer)
	updated := current
	if question != "" {
		if !strings.EqualFold(question, current.Question) && u.faqRepo.QuestionExists(question) {
			return ErrQuestionExists
		}
		updated.Question = question
	}
	if answer != "" {
		updated.Answer = answer
	}

	if err := u.faqRepo.Update(index, updated); err != nil {
		u.log.Warnf("Failed to persist FAQ update at %d: %+v", index, err)
		return apperrors.Storagef("save faq: %v", err)
	}
	return nil
}

func (u *faqUsecase) Remove(ctx context.Context, index int) error {
	if _, ok := u.faqRepo.Get(index); !ok {
		return ErrFAQEntryNotFound
	}
	if err := u.faqRepo.Remove(index); err != nil {
		u.log.Warnf("Failed to persist FAQ removal at %d: %+v", index, err)
		return apperrors.Storagef("save faq: %v", err)
	}
	return nil
}
