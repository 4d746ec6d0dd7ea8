package repository

import (
	"errors"
	"time"

	"odontocare/internal/domain/entity"
	domainRepo "odontocare/internal/domain/repository"

	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	query := db.Model(&entity.Appointment{})
	if filter.FechaInicio != nil {
		query = query.Where("fecha >= ?", *filter.FechaInicio)
	}
	if filter.FechaFin != nil {
		query = query.Where("fecha <= ?", *filter.FechaFin)
	}
	if filter.IDDoctor != 0 {
		query = query.Where("id_doctor = ?", filter.IDDoctor)
	}
	if filter.IDCentro != 0 {
		query = query.Where("id_centro = ?", filter.IDCentro)
	}
	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}

	var appointments []entity.Appointment
	if err := query.Order("id").Find(&appointments).Error; err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindScheduledConflict(db *gorm.DB, doctorID uint, fecha time.Time) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id_doctor = ? AND fecha = ? AND estado = ?",
		doctorID, fecha, entity.AppointmentStatusScheduled).
		First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

// Cancel uses a conditional UPDATE so two concurrent cancellations cannot
// both report success.
func (r *appointmentRepository) Cancel(db *gorm.DB, id uint) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("id = ? AND estado != ?", id, entity.AppointmentStatusCancelled).
		Update("estado", entity.AppointmentStatusCancelled)
	return result.RowsAffected, result.Error
}
