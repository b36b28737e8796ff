package entity

import "fmt"

// Patient represents a registered clinic patient. Records are immutable
// once created; the CPF is the unique key.
type Patient struct {
	Name  string `json:"nome"`
	CPF   string `json:"cpf"`
	Phone string `json:"telefone"`
}

// FormatPhone builds the stored contact string from a 2-digit area code
// and an 8-digit (landline) or 9-digit (mobile) local number.
func FormatPhone(areaCode, number string) string {
	if len(number) == 9 {
		return fmt.Sprintf("+55 (%s) %s-%s", areaCode, number[:5], number[5:])
	}
	return fmt.Sprintf("+55 (%s) %s-%s", areaCode, number[:4], number[4:])
}
