package dto

// Request DTOs

type RegisterPatientRequest struct {
	Name        string `json:"name" validate:"required,alphaname"`
	CPF         string `json:"cpf" validate:"required,cpf"`
	AreaCode    string `json:"area_code" validate:"required,ddd"`
	LocalNumber string `json:"local_number" validate:"required,localphone"`
}

// Response DTOs

type PatientResponse struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Phone string `json:"phone"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
