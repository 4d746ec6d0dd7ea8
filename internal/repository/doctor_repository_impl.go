package repository

import (
	"errors"

	"odontocare/internal/domain/entity"
	domainRepo "odontocare/internal/domain/repository"

	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindActiveByID(db *gorm.DB, id uint) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Where("id = ? AND estado = ?", id, entity.RecordStatusActive).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Doctor, int64, error) {
	query := db.Model(&entity.Doctor{})
	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.Nombre != "" {
		query = query.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}
	if filter.Especialidad != "" {
		query = query.Where("especialidad ILIKE ?", "%"+filter.Especialidad+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, perPage := normalizePage(filter.Page, filter.PerPage)
	filter.Page, filter.PerPage = page, perPage

	var doctors []entity.Doctor
	err := query.Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&doctors).Error
	if err != nil {
		return nil, 0, err
	}
	return doctors, total, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Save(doctor).Error
}
