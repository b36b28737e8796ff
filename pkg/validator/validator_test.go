package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTags(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		tag   string
		value string
		want  bool
	}{
		{"cpf", "12345678901", true},
		{"cpf", "1234567890", false},
		{"cpf", "123456789012", false},
		{"cpf", "1234567890a", false},
		{"cpf", "+2345678901", false},

		{"ddd", "11", true},
		{"ddd", "99", true},
		{"ddd", "10", false},
		{"ddd", "1", false},
		{"ddd", "111", false},
		{"ddd", "ab", false},

		{"localphone", "32165487", true},
		{"localphone", "987654321", true},
		{"localphone", "3216548", false},
		{"localphone", "9876543210", false},
		{"localphone", "98765432a", false},

		{"alphaname", "Maria Silva", true},
		{"alphaname", "Jo", true},
		{"alphaname", "J", false},
		{"alphaname", "  ", false},
		{"alphaname", "Maria2", false},
		{"alphaname", "Maria-Silva", false},

		{"clinicday", "10/03/2025", true},
		{"clinicday", "31/12/2026", true},
		{"clinicday", "29/02/2025", false},
		{"clinicday", "10/03/2024", false},
		{"clinicday", "10-03-2025", false},

		{"clinicslot", "08:00", true},
		{"clinicslot", "18:30", true},
		{"clinicslot", "07:30", false},
		{"clinicslot", "19:00", false},
		{"clinicslot", "08:15", false},
	}

	for _, tt := range tests {
		t.Run(tt.tag+"/"+tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, v.Field(tt.value, tt.tag))
		})
	}
}

func TestFormatValidationErrors(t *testing.T) {
	v := NewValidator()

	type form struct {
		Name string `validate:"required,alphaname"`
		CPF  string `validate:"required,cpf"`
	}

	err := v.Validate(form{Name: "Maria Silva", CPF: "123"})
	require.Error(t, err)

	fields := v.FormatValidationErrors(err)
	require.Len(t, fields, 1, "only the failing field is reported")
	assert.Contains(t, fields["CPF"], "11 digits")
}

func TestMessageJoinsFields(t *testing.T) {
	v := NewValidator()

	type form struct {
		Name string `validate:"required"`
		CPF  string `validate:"required"`
	}

	err := v.Validate(form{})
	require.Error(t, err)

	msg := v.Message(err)
	assert.Contains(t, msg, "Name is required")
	assert.Contains(t, msg, "CPF is required")
}
