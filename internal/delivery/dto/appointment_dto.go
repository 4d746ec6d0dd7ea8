package dto

// Request DTOs

type CreateAppointmentRequest struct {
	Fecha      string `json:"fecha" validate:"required"`
	Motivo     string `json:"motivo" validate:"required,max=200"`
	IDPaciente uint   `json:"id_paciente" validate:"required,min=1"`
	IDDoctor   uint   `json:"id_doctor" validate:"required,min=1"`
	IDCentro   uint   `json:"id_centro" validate:"required,min=1"`
}

// ListAppointmentsRequest mirrors the query parameters of GET /citas.
type ListAppointmentsRequest struct {
	FechaInicio string
	FechaFin    string
	IDDoctor    uint
	IDCentro    uint
	Estado      string
}

// Response DTOs

type AppointmentResponse struct {
	ID                uint   `json:"id"`
	Fecha             string `json:"fecha"`
	Motivo            string `json:"motivo"`
	Estado            string `json:"estado"`
	IDPaciente        uint   `json:"id_paciente"`
	IDDoctor          uint   `json:"id_doctor"`
	IDCentro          uint   `json:"id_centro"`
	IDUsuarioRegistra uint   `json:"id_usuario_registra"`
}

type AppointmentListResponse struct {
	Citas []AppointmentResponse `json:"citas"`
}
