package usecase

import (
	"context"
	"testing"

	"clinic-scheduler/internal/delivery/dto"
	"clinic-scheduler/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndFind(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	req := &dto.RegisterPatientRequest{
		Name:        "Maria Silva",
		CPF:         "12345678901",
		AreaCode:    "11",
		LocalNumber: "987654321",
	}
	created, err := deps.patients.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "+55 (11) 98765-4321", created.Phone)

	found, err := deps.patients.FindByCPF(ctx, "12345678901")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", found.Name)
	assert.Equal(t, "12345678901", found.CPF)
}

func TestRegisterDuplicateCPF(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	req := &dto.RegisterPatientRequest{
		Name:        "Maria Silva",
		CPF:         "12345678901",
		AreaCode:    "11",
		LocalNumber: "987654321",
	}
	_, err := deps.patients.Register(ctx, req)
	require.NoError(t, err)

	second := &dto.RegisterPatientRequest{
		Name:        "Joao Souza",
		CPF:         "12345678901",
		AreaCode:    "21",
		LocalNumber: "32165487",
	}
	_, err = deps.patients.Register(ctx, second)
	require.ErrorIs(t, err, ErrCPFAlreadyRegistered)
	assert.True(t, apperrors.IsConflict(err), "duplicate CPF must carry the conflict kind")
}

func TestRegisterValidation(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	tests := []struct {
		name string
		req  dto.RegisterPatientRequest
	}{
		{"short cpf", dto.RegisterPatientRequest{Name: "Maria", CPF: "123", AreaCode: "11", LocalNumber: "987654321"}},
		{"letters in cpf", dto.RegisterPatientRequest{Name: "Maria", CPF: "1234567890a", AreaCode: "11", LocalNumber: "987654321"}},
		{"single letter name", dto.RegisterPatientRequest{Name: "M", CPF: "12345678901", AreaCode: "11", LocalNumber: "987654321"}},
		{"digits in name", dto.RegisterPatientRequest{Name: "Maria2", CPF: "12345678901", AreaCode: "11", LocalNumber: "987654321"}},
		{"area code too low", dto.RegisterPatientRequest{Name: "Maria", CPF: "12345678901", AreaCode: "10", LocalNumber: "987654321"}},
		{"short number", dto.RegisterPatientRequest{Name: "Maria", CPF: "12345678901", AreaCode: "11", LocalNumber: "1234567"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := deps.patients.Register(ctx, &tt.req)
			assert.True(t, apperrors.IsValidation(err), "expected validation error, got %v", err)
		})
	}
}

func TestFindByCPFNotFound(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	_, err := deps.patients.FindByCPF(ctx, "99999999999")
	assert.ErrorIs(t, err, ErrPatientNotFound)

	_, err = deps.patients.FindByCPF(ctx, "123")
	assert.True(t, apperrors.IsValidation(err), "malformed CPF must be a validation error, got %v", err)
}

func TestListPatients(t *testing.T) {
	deps := newTestDeps(t)
	ctx := context.Background()

	deps.mustRegisterPatient(t, "Maria Silva", "12345678901")
	deps.mustRegisterPatient(t, "Joao Souza", "98765432100")

	list, err := deps.patients.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Patients, 2)
	assert.Equal(t, "Maria Silva", list.Patients[0].Name, "registration order is kept")
}
