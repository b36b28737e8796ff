package cli

import (
	"context"
	"errors"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/usecase"
)

type FAQHandler struct {
	faqUsecase usecase.FAQUsecase
	prompter   *Prompter
}

func NewFAQHandler(faqUsecase usecase.FAQUsecase, prompter *Prompter) *FAQHandler {
	return &FAQHandler{
		faqUsecase: faqUsecase,
		prompter:   prompter,
	}
}

// Browse is the patient-facing FAQ: pick a question, read the answer.
func (h *FAQHandler) Browse(ctx context.Context) {
	list, err := h.faqUsecase.List(ctx)
	if err != nil || list.Total == 0 {
		h.prompter.Println("No questions registered.")
		return
	}

	for {
		h.prompter.Println("=== FAQ - Frequently Asked Questions ===")
		for i, entry := range list.Entries {
			h.prompter.Printf("%d. %s\n", i+1, entry.Question)
		}
		index, back := h.prompter.PickIndex("Choose a question to see the answer (0 to go back): ", list.Total)
		if back {
			return
		}
		h.prompter.Printf("\n%s\n", list.Entries[index].Question)
		h.prompter.Printf("%s\n", list.Entries[index].Answer)
		if !h.prompter.Confirm("See another question?") {
			return
		}
	}
}

// Manage is the administrator FAQ menu: view, add, edit and remove
// entries, persisting after every change.
func (h *FAQHandler) Manage(ctx context.Context) {
	for {
		h.prompter.ClearScreen()
		h.prompter.Println("=== Manage FAQ ===")
		h.prompter.Println("1. View questions and answers")
		h.prompter.Println("2. Add question")
		h.prompter.Println("3. Edit question")
		h.prompter.Println("4. Remove question")
		h.prompter.Println("0. Back")

		switch h.prompter.Choice("Choose: ", []string{"0", "1", "2", "3", "4"}) {
		case "0":
			h.prompter.ClearScreen()
			return
		case "1":
			h.prompter.ClearScreen()
			h.viewAll(ctx)
			h.prompter.Pause()
		case "2":
			h.prompter.ClearScreen()
			h.repeat(func() { h.add(ctx) }, "Add another question?")
		case "3":
			h.prompter.ClearScreen()
			h.repeat(func() { h.edit(ctx) }, "Edit another question?")
		case "4":
			h.prompter.ClearScreen()
			h.repeat(func() { h.remove(ctx) }, "Remove another question?")
		}
	}
}

func (h *FAQHandler) repeat(action func(), again string) {
	for {
		action()
		if !h.prompter.Confirm(again) {
			return
		}
	}
}

func (h *FAQHandler) viewAll(ctx context.Context) {
	list, err := h.faqUsecase.List(ctx)
	if err != nil || list.Total == 0 {
		h.prompter.Println("No questions registered.")
		return
	}
	h.prompter.Println("=== Questions and Answers ===")
	for i, entry := range list.Entries {
		h.prompter.Printf("%d. Question: %s\n", i+1, entry.Question)
		h.prompter.Printf("   Answer: %s\n\n", entry.Answer)
	}
}

func (h *FAQHandler) add(ctx context.Context) {
	h.prompter.Println("=== Add Question ===")
	question := h.prompter.Text("Enter the question: ")
	answer := h.prompter.Text("Enter the answer: ")

	for {
		err := h.faqUsecase.Add(ctx, &dto.AddFAQRequest{Question: question, Answer: answer})
		if err == nil {
			h.prompter.Println("Question added successfully!")
			return
		}
		switch {
		case errors.Is(err, usecase.ErrEmptyQuestion):
			h.prompter.Println("The question must not be empty. Try again.")
			question = h.prompter.Text("Enter the question: ")
		case errors.Is(err, usecase.ErrQuestionExists):
			h.prompter.Println("This question already exists in the FAQ. Enter a different one.")
			question = h.prompter.Text("Enter the question: ")
		case errors.Is(err, usecase.ErrEmptyAnswer):
			h.prompter.Println("The answer must not be empty. Try again.")
			answer = h.prompter.Text("Enter the answer: ")
		default:
			renderError(h.prompter, err)
			return
		}
	}
}

func (h *FAQHandler) edit(ctx context.Context) {
	h.prompter.Println("=== Edit Question ===")
	list, err := h.faqUsecase.List(ctx)
	if err != nil || list.Total == 0 {
		h.prompter.Println("No questions registered.")
		return
	}
	for i, entry := range list.Entries {
		h.prompter.Printf("%d. %s\n", i+1, entry.Question)
	}
	index, back := h.prompter.PickIndex("Choose the question number to edit (0 to go back): ", list.Total)
	if back {
		return
	}

	entry := list.Entries[index]
	h.prompter.Printf("Current question: %s\n", entry.Question)
	newQuestion := h.prompter.Text("Enter the new question (ENTER to keep): ")
	h.prompter.Printf("Current answer: %s\n", entry.Answer)
	newAnswer := h.prompter.Text("Enter the new answer (ENTER to keep): ")

	req := &dto.UpdateFAQRequest{Question: newQuestion, Answer: newAnswer}
	if err := h.faqUsecase.Update(ctx, index, req); err != nil {
		renderError(h.prompter, err)
		return
	}
	h.prompter.Println("Question updated.")
}

func (h *FAQHandler) remove(ctx context.Context) {
	h.prompter.Println("=== Remove Question ===")
	list, err := h.faqUsecase.List(ctx)
	if err != nil || list.Total == 0 {
		h.prompter.Println("No questions registered.")
		return
	}
	for i, entry := range list.Entries {
		h.prompter.Printf("%d. %s\n", i+1, entry.Question)
	}
	index, back := h.prompter.PickIndex("Choose the question number to remove (0 to go back): ", list.Total)
	if back {
		return
	}
	question := list.Entries[index].Question
	if err := h.faqUsecase.Remove(ctx, index); err != nil {
		renderError(h.prompter, err)
		return
	}
	h.prompter.Printf("Question %q removed.\n", question)
}
