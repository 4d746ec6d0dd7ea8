package dto

// Request DTOs

type CreateDoctorRequest struct {
	Nombre       string `json:"nombre" validate:"required,max=100"`
	Especialidad string `json:"especialidad" validate:"omitempty,max=50"`
	Estado       string `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

type UpdateDoctorRequest struct {
	Nombre       *string `json:"nombre" validate:"omitempty,max=100"`
	Especialidad *string `json:"especialidad" validate:"omitempty,max=50"`
	Estado       *string `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

// Response DTOs

type DoctorResponse struct {
	ID           uint   `json:"id"`
	Nombre       string `json:"nombre"`
	Especialidad string `json:"especialidad"`
	Estado       string `json:"estado"`
}

type DoctorListResponse struct {
	Doctores []DoctorResponse `json:"doctores"`
}
