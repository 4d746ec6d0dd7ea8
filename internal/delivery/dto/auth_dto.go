package dto

// Request DTOs

type RegisterRequest struct {
	Username string `json:"username" validate:"required,max=80"`
	Password string `json:"password" validate:"required"`
	Rol      string `json:"rol" validate:"omitempty,oneof=admin medico secretaria paciente"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Rol      string `json:"rol"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	ExpiresIn   int64        `json:"expires_in"`
	Usuario     UserResponse `json:"usuario"`
}
