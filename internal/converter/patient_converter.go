package converter

import (
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
)

func PatientToResponse(patient *entity.Patient) *dto.PatientResponse {
	if patient == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:       patient.ID,
		Nombre:   patient.Nombre,
		Telefono: patient.Telefono,
		Estado:   string(patient.Estado),
	}
}

func PatientsToResponses(patients []entity.Patient) []dto.PatientResponse {
	responses := make([]dto.PatientResponse, 0, len(patients))
	for i := range patients {
		responses = append(responses, *PatientToResponse(&patients[i]))
	}
	return responses
}
