package entity

import "time"

// Appointment represents a booking owned by the appointment service.
// The patient/doctor/center ids reference records in the identity service;
// they are verified remotely at creation time, not by foreign keys.
type Appointment struct {
	ID                uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	Fecha             time.Time         `gorm:"not null;index" json:"fecha"`
	Motivo            string            `gorm:"type:varchar(200);not null" json:"motivo"`
	Estado            AppointmentStatus `gorm:"type:varchar(20);not null;default:'PROGRAMADA';index" json:"estado"`
	IDPaciente        uint              `gorm:"column:id_paciente;not null;index" json:"id_paciente"`
	IDDoctor          uint              `gorm:"column:id_doctor;not null;index" json:"id_doctor"`
	IDCentro          uint              `gorm:"column:id_centro;not null;index" json:"id_centro"`
	IDUsuarioRegistra uint              `gorm:"column:id_usuario_registra;not null" json:"id_usuario_registra"`
}

func (Appointment) TableName() string {
	return "appointments"
}

func (a *Appointment) IsScheduled() bool {
	return a.Estado == AppointmentStatusScheduled
}

func (a *Appointment) IsCancelled() bool {
	return a.Estado == AppointmentStatusCancelled
}

// Cancel moves the appointment to CANCELADA.
func (a *Appointment) Cancel() {
	a.Estado = AppointmentStatusCancelled
}
