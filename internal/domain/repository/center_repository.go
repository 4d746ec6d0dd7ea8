package repository

import (
	"odontocare/internal/domain/entity"

	"gorm.io/gorm"
)

type CenterRepository interface {
	Create(db *gorm.DB, center *entity.Center) error
	FindByID(db *gorm.DB, id uint) (*entity.Center, error)
	FindActiveByID(db *gorm.DB, id uint) (*entity.Center, error)
	FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Center, int64, error)
	Update(db *gorm.DB, center *entity.Center) error
}
