package repository

import (
	"errors"

	"odontocare/internal/domain/entity"
	domainRepo "odontocare/internal/domain/repository"

	"gorm.io/gorm"
)

type centerRepository struct{}

func NewCenterRepository() domainRepo.CenterRepository {
	return &centerRepository{}
}

func (r *centerRepository) Create(db *gorm.DB, center *entity.Center) error {
	return db.Create(center).Error
}

func (r *centerRepository) FindByID(db *gorm.DB, id uint) (*entity.Center, error) {
	var center entity.Center
	err := db.Where("id = ?", id).First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &center, nil
}

func (r *centerRepository) FindActiveByID(db *gorm.DB, id uint) (*entity.Center, error) {
	var center entity.Center
	err := db.Where("id = ? AND estado = ?", id, entity.RecordStatusActive).First(&center).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &center, nil
}

func (r *centerRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Center, int64, error) {
	query := db.Model(&entity.Center{})
	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.Nombre != "" {
		query = query.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Direccion != "" {
		query = query.Where("direccion ILIKE ?", "%"+filter.Direccion+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, perPage := normalizePage(filter.Page, filter.PerPage)
	filter.Page, filter.PerPage = page, perPage

	var centers []entity.Center
	err := query.Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&centers).Error
	if err != nil {
		return nil, 0, err
	}
	return centers, total, nil
}

func (r *centerRepository) Update(db *gorm.DB, center *entity.Center) error {
	return db.Save(center).Error
}
