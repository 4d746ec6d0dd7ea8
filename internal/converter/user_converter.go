package converter

import (
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
)

// UserToResponse converts a User entity to its response DTO. The password
// hash never leaves the usecase layer.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Rol:      user.Rol,
	}
}
