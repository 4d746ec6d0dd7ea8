package converter

import (
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
)

func CenterToResponse(center *entity.Center) *dto.CenterResponse {
	if center == nil {
		return nil
	}

	return &dto.CenterResponse{
		ID:        center.ID,
		Nombre:    center.Nombre,
		Direccion: center.Direccion,
		Estado:    string(center.Estado),
	}
}

func CentersToResponses(centers []entity.Center) []dto.CenterResponse {
	responses := make([]dto.CenterResponse, 0, len(centers))
	for i := range centers {
		responses = append(responses, *CenterToResponse(&centers[i]))
	}
	return responses
}
