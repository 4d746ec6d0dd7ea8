package converter

import (
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
)

func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:           doctor.ID,
		Nombre:       doctor.Nombre,
		Especialidad: doctor.Especialidad,
		Estado:       string(doctor.Estado),
	}
}

func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, 0, len(doctors))
	for i := range doctors {
		responses = append(responses, *DoctorToResponse(&doctors[i]))
	}
	return responses
}
