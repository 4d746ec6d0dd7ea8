package repository

import (
	"odontocare/internal/domain/entity"

	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindActiveByID(db *gorm.DB, id uint) (*entity.Doctor, error)
	FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Doctor, int64, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
}
