package cli

import (
	"context"
	"errors"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/usecase"
	"clinic-scheduler/pkg/validator"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
	validator      *validator.CustomValidator
	prompter       *Prompter
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase, validator *validator.CustomValidator, prompter *Prompter) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
		validator:      validator,
		prompter:       prompter,
	}
}

// Register runs the interactive registration form. Each field re-prompts
// until valid; duplicate CPFs re-prompt the CPF field.
func (h *PatientHandler) Register(ctx context.Context) {
	for {
		h.prompter.Println("=== Patient Registration ===")

		var name string
		for {
			name = h.prompter.Text("Enter the patient's name: ")
			if h.validator.Field(name, "required,alphaname") {
				break
			}
			h.prompter.Println("Invalid name. Enter at least 2 characters, letters only.")
		}

		var cpf string
		for {
			cpf = h.prompter.Text("Enter the patient's CPF (11 digits): ")
			if !h.validator.Field(cpf, "required,cpf") {
				h.prompter.Println("Invalid CPF. Enter exactly 11 digits.")
				continue
			}
			if _, err := h.patientUsecase.FindByCPF(ctx, cpf); err == nil {
				h.prompter.Println("A patient with this CPF already exists. Try another.")
				continue
			}
			break
		}

		h.prompter.Println("Enter the WhatsApp contact details:")
		var areaCode string
		for {
			areaCode = h.prompter.Text("Enter the area code (2 digits): ")
			if h.validator.Field(areaCode, "required,ddd") {
				break
			}
			h.prompter.Println("Invalid area code. Must be 2 digits between 11 and 99.")
		}

		var number string
		for {
			number = h.prompter.Text("Enter the contact number (8 or 9 digits): ")
			if h.validator.Field(number, "required,localphone") {
				break
			}
			h.prompter.Println("Invalid number. Enter 8 digits (landline) or 9 digits (mobile).")
		}

		req := &dto.RegisterPatientRequest{Name: name, CPF: cpf, AreaCode: areaCode, LocalNumber: number}
		if _, err := h.patientUsecase.Register(ctx, req); err != nil {
			h.prompter.Printf("Registration failed: %v\n", err)
		} else {
			h.prompter.Println("Patient registered successfully!")
		}

		if !h.prompter.Confirm("\nRegister another patient?") {
			return
		}
	}
}

// ListAll prints the patient directory in registration order.
func (h *PatientHandler) ListAll(ctx context.Context) {
	h.prompter.Println("=== Registered Patients ===")
	list, err := h.patientUsecase.List(ctx)
	if err != nil {
		renderError(h.prompter, err)
		return
	}
	if list.Total == 0 {
		h.prompter.Println("No patients registered.")
		return
	}
	for i, patient := range list.Patients {
		h.prompter.Printf("%d. %s - CPF %s - %s\n", i+1, patient.Name, patient.CPF, patient.Phone)
	}
	h.prompter.Printf("\nTotal: %d patient(s)\n", list.Total)
}

// LookupPatient prompts for a CPF until a registered patient is found or
// the operator backs out.
func (h *PatientHandler) LookupPatient(ctx context.Context) (*dto.PatientResponse, bool) {
	for {
		cpf := h.prompter.Text("Enter the patient's CPF (11 digits): ")
		patient, err := h.patientUsecase.FindByCPF(ctx, cpf)
		if err == nil {
			h.prompter.Printf("\nPatient found: %s\n", patient.Name)
			return patient, true
		}
		if !errors.Is(err, usecase.ErrPatientNotFound) && !isValidationErr(err) {
			h.prompter.Printf("Lookup failed: %v\n", err)
		}
		h.prompter.Println("\nCPF invalid or not registered. Enter exactly 11 digits.")
		choice := h.prompter.Choice(
			"\nWhat do you want to do?\n1 - Try again\n2 - Back\nChoose: ",
			[]string{"1", "2"},
		)
		if choice == "2" {
			return nil, false
		}
	}
}
