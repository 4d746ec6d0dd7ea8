package repository

import (
	"time"

	"odontocare/internal/domain/entity"

	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	// FindScheduledConflict looks for a PROGRAMADA appointment with the same
	// doctor and the exact same timestamp. Returns nil when there is none.
	FindScheduledConflict(db *gorm.DB, doctorID uint, fecha time.Time) (*entity.Appointment, error)
	// Cancel atomically moves an appointment to CANCELADA unless it already
	// is. Returns affected rows: 1 = cancelled, 0 = was already cancelled.
	Cancel(db *gorm.DB, id uint) (int64, error)
}
