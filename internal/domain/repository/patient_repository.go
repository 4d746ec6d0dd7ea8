package repository

import (
	"odontocare/internal/domain/entity"

	"gorm.io/gorm"
)

type PatientRepository interface {
	Create(db *gorm.DB, patient *entity.Patient) error
	FindByID(db *gorm.DB, id uint) (*entity.Patient, error)
	// FindActiveByID only matches ACTIVO records; used by the verify endpoint.
	FindActiveByID(db *gorm.DB, id uint) (*entity.Patient, error)
	FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Patient, int64, error)
	Update(db *gorm.DB, patient *entity.Patient) error
}
