package dto

// Request DTOs

type CreatePatientRequest struct {
	Nombre   string `json:"nombre" validate:"required,max=100"`
	Telefono string `json:"telefono" validate:"omitempty,max=20"`
	Estado   string `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

// UpdatePatientRequest uses pointers so absent fields keep their values.
type UpdatePatientRequest struct {
	Nombre   *string `json:"nombre" validate:"omitempty,max=100"`
	Telefono *string `json:"telefono" validate:"omitempty,max=20"`
	Estado   *string `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

// Response DTOs

type PatientResponse struct {
	ID       uint   `json:"id"`
	Nombre   string `json:"nombre"`
	Telefono string `json:"telefono"`
	Estado   string `json:"estado"`
}

type PatientListResponse struct {
	Pacientes []PatientResponse `json:"pacientes"`
}
