package dto

// Request DTOs

type CreateCenterRequest struct {
	Nombre    string `json:"nombre" validate:"required,max=100"`
	Direccion string `json:"direccion" validate:"omitempty,max=200"`
	Estado    string `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

type UpdateCenterRequest struct {
	Nombre    *string `json:"nombre" validate:"omitempty,max=100"`
	Direccion *string `json:"direccion" validate:"omitempty,max=200"`
	Estado    *string `json:"estado" validate:"omitempty,oneof=ACTIVO INACTIVO"`
}

// Response DTOs

type CenterResponse struct {
	ID        uint   `json:"id"`
	Nombre    string `json:"nombre"`
	Direccion string `json:"direccion"`
	Estado    string `json:"estado"`
}

type CenterListResponse struct {
	Centros []CenterResponse `json:"centros"`
}
