package converter

import (
	"time"

	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
)

func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	return &dto.AppointmentResponse{
		ID:                appointment.ID,
		Fecha:             appointment.Fecha.Format(time.RFC3339),
		Motivo:            appointment.Motivo,
		Estado:            string(appointment.Estado),
		IDPaciente:        appointment.IDPaciente,
		IDDoctor:          appointment.IDDoctor,
		IDCentro:          appointment.IDCentro,
		IDUsuarioRegistra: appointment.IDUsuarioRegistra,
	}
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}
