package usecase

import (
	"context"
	"fmt"

	"clinic-scheduler/internal/converter"
	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/internal/domain/entity"
	"clinic-scheduler/internal/domain/repository"
	"clinic-scheduler/pkg/apperrors"
	"clinic-scheduler/pkg/validator"

	"github.com/sirupsen/logrus"
)

var (
	ErrPatientNotFound      = fmt.Errorf("%w: patient not found", apperrors.ErrNotFound)
	ErrCPFAlreadyRegistered = fmt.Errorf("%w: a patient with this CPF is already registered", apperrors.ErrConflict)
)

type PatientUsecase interface {
	Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error)
	FindByCPF(ctx context.Context, cpf string) (*dto.PatientResponse, error)
	List(ctx context.Context) (*dto.PatientListResponse, error)
}

type patientUsecase struct {
	log         *logrus.Logger
	validate    *validator.CustomValidator
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(
	log *logrus.Logger,
	validate *validator.CustomValidator,
	patientRepo repository.PatientRepository,
) PatientUsecase {
	return &patientUsecase{
		log:         log,
		validate:    validate,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Register(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.PatientResponse, error) {
	if err := u.validate.Validate(req); err != nil {
		return nil, apperrors.Validationf("%s", u.validate.Message(err))
	}

	if u.patientRepo.FindByCPF(req.CPF) != nil {
		return nil, ErrCPFAlreadyRegistered
	}

	patient := entity.Patient{
		Name:  req.Name,
		CPF:   req.CPF,
		Phone: entity.FormatPhone(req.AreaCode, req.LocalNumber),
	}

	if err := u.patientRepo.Create(patient); err != nil {
		u.log.Warnf("Failed to persist patient %s: %+v", req.CPF, err)
		return nil, apperrors.Storagef("save patient directory: %v", err)
	}

	u.log.Infof("Patient registered: cpf=%s", patient.CPF)
	return converter.PatientToResponse(&patient), nil
}

func (u *patientUsecase) FindByCPF(ctx context.Context, cpf string) (*dto.PatientResponse, error) {
	if !validCPF(cpf) {
		return nil, apperrors.Validationf("CPF must be exactly 11 digits")
	}

	patient := u.patientRepo.FindByCPF(cpf)
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context) (*dto.PatientListResponse, error) {
	patients := u.patientRepo.All()
	return &dto.PatientListResponse{
		Patients: converter.PatientsToResponses(patients),
		Total:    len(patients),
	}, nil
}

func validCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
