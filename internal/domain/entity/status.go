package entity

// RecordStatus is the soft-delete state of patients, doctors and centers.
// Records are never hard-deleted; INACTIVO hides them from default listings.
type RecordStatus string

const (
	RecordStatusActive   RecordStatus = "ACTIVO"
	RecordStatusInactive RecordStatus = "INACTIVO"
)

// IsValid reports whether s is a known record status.
func (s RecordStatus) IsValid() bool {
	return s == RecordStatusActive || s == RecordStatusInactive
}

// AppointmentStatus is the lifecycle state of an appointment.
// PROGRAMADA may move to COMPLETADA or CANCELADA; both are terminal.
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "PROGRAMADA"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETADA"
	AppointmentStatusCancelled AppointmentStatus = "CANCELADA"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusCompleted, AppointmentStatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo enforces the one-way lifecycle: nothing leaves CANCELADA,
// and a cancelled or completed appointment is never reactivated.
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	if s == target {
		return false
	}
	switch s {
	case AppointmentStatusScheduled:
		return target == AppointmentStatusCompleted || target == AppointmentStatusCancelled
	case AppointmentStatusCompleted:
		return target == AppointmentStatusCancelled
	}
	return false
}
