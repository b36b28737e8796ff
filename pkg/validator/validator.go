package validator

import (
	"sort"
	"strconv"
	"strings"
	"unicode"

	"clinic-scheduler/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("cpf", validateCPF)
	v.RegisterValidation("ddd", validateDDD)
	v.RegisterValidation("localphone", validateLocalPhone)
	v.RegisterValidation("alphaname", validateAlphaName)
	v.RegisterValidation("clinicday", validateClinicDay)
	v.RegisterValidation("clinicslot", validateClinicSlot)

	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				errors[field] = field + " is required"
			case "min":
				errors[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				errors[field] = field + " must be at most " + e.Param() + " characters"
			case "cpf":
				errors[field] = field + " must be exactly 11 digits"
			case "ddd":
				errors[field] = field + " must be a 2-digit area code between 11 and 99"
			case "localphone":
				errors[field] = field + " must be 8 digits (landline) or 9 digits (mobile)"
			case "alphaname":
				errors[field] = field + " must contain only letters and at least 2 of them"
			case "clinicday":
				errors[field] = field + " must be a valid dd/mm/yyyy date in 2025 or 2026"
			case "clinicslot":
				errors[field] = field + " must be on the 30-minute grid between 08:00 and 18:30"
			default:
				errors[field] = field + " is invalid"
			}
		}
	}

	return errors
}

// cpf: exactly 11 numeric digits.
func validateCPF(fl validator.FieldLevel) bool {
	cpf := fl.Field().String()
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

// ddd: 2-digit Brazilian area code, 11 through 99.
func validateDDD(fl validator.FieldLevel) bool {
	ddd := fl.Field().String()
	if len(ddd) != 2 {
		return false
	}
	n, err := strconv.Atoi(ddd)
	if err != nil {
		return false
	}
	return n >= 11 && n <= 99
}

// localphone: 8 digits for landlines, 9 for mobiles.
func validateLocalPhone(fl validator.FieldLevel) bool {
	number := fl.Field().String()
	if len(number) != 8 && len(number) != 9 {
		return false
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// alphaname: letters and spaces only, with at least 2 letters.
func validateAlphaName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	letters := 0
	for _, r := range name {
		if unicode.IsLetter(r) {
			letters++
			continue
		}
		if r != ' ' {
			return false
		}
	}
	return letters >= 2 && strings.TrimSpace(name) != ""
}

func validateClinicDay(fl validator.FieldLevel) bool {
	return entity.ValidDay(fl.Field().String())
}

func validateClinicSlot(fl validator.FieldLevel) bool {
	return entity.ValidSlot(fl.Field().String())
}

// Message flattens validation errors into a single operator-facing line.
func (cv *CustomValidator) Message(err error) string {
	fields := cv.FormatValidationErrors(err)
	if len(fields) == 0 {
		return err.Error()
	}
	msgs := make([]string, 0, len(fields))
	for _, msg := range fields {
		msgs = append(msgs, msg)
	}
	sort.Strings(msgs)
	return strings.Join(msgs, "; ")
}

// Field validates a single value against one tag, for interactive
// per-field prompting.
func (cv *CustomValidator) Field(value, tag string) bool {
	return cv.validator.Var(value, tag) == nil
}
