package repository

import (
	"errors"

	"odontocare/internal/domain/entity"
	domainRepo "odontocare/internal/domain/repository"

	"gorm.io/gorm"
)

type patientRepository struct{}

func NewPatientRepository() domainRepo.PatientRepository {
	return &patientRepository{}
}

func (r *patientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	return db.Create(patient).Error
}

func (r *patientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ?", id).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindActiveByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	var patient entity.Patient
	err := db.Where("id = ? AND estado = ?", id, entity.RecordStatusActive).First(&patient).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Patient, int64, error) {
	query := db.Model(&entity.Patient{})
	if filter.Estado != "" {
		query = query.Where("estado = ?", filter.Estado)
	}
	if filter.Nombre != "" {
		query = query.Where("nombre ILIKE ?", "%"+filter.Nombre+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, perPage := normalizePage(filter.Page, filter.PerPage)
	filter.Page, filter.PerPage = page, perPage

	var patients []entity.Patient
	err := query.Order("id").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&patients).Error
	if err != nil {
		return nil, 0, err
	}
	return patients, total, nil
}

func (r *patientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	return db.Save(patient).Error
}
