package usecase

import (
	"context"
	"errors"

	"odontocare/internal/converter"
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
	"odontocare/internal/domain/repository"
	"odontocare/pkg/response"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrPatientNotFound = errors.New("patient not found")

type PatientUsecase interface {
	Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error)
	Get(ctx context.Context, id uint) (*dto.PatientResponse, error)
	List(ctx context.Context, filter *entity.ListFilter) (*dto.PatientListResponse, *response.Meta, error)
	Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error)
	// Delete is the soft delete: it forces estado to INACTIVO.
	Delete(ctx context.Context, id uint) error
}

type patientUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
}

func NewPatientUsecase(db *gorm.DB, log *logrus.Logger, patientRepo repository.PatientRepository) PatientUsecase {
	return &patientUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
	}
}

func (u *patientUsecase) Create(ctx context.Context, req *dto.CreatePatientRequest) (*dto.PatientResponse, error) {
	estado := entity.RecordStatusActive
	if req.Estado != "" {
		estado = entity.RecordStatus(req.Estado)
	}

	patient := &entity.Patient{
		Nombre:   req.Nombre,
		Telefono: req.Telefono,
		Estado:   estado,
	}

	if err := u.patientRepo.Create(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to create patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Get(ctx context.Context, id uint) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) List(ctx context.Context, filter *entity.ListFilter) (*dto.PatientListResponse, *response.Meta, error) {
	patients, total, err := u.patientRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, nil, err
	}

	return &dto.PatientListResponse{
		Pacientes: converter.PatientsToResponses(patients),
	}, buildMeta(filter, total), nil
}

func (u *patientUsecase) Update(ctx context.Context, id uint, req *dto.UpdatePatientRequest) (*dto.PatientResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	if req.Nombre != nil {
		patient.Nombre = *req.Nombre
	}
	if req.Telefono != nil {
		patient.Telefono = *req.Telefono
	}
	if req.Estado != nil {
		patient.Estado = entity.RecordStatus(*req.Estado)
	}

	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to update patient: %+v", err)
		return nil, err
	}

	return converter.PatientToResponse(patient), nil
}

func (u *patientUsecase) Delete(ctx context.Context, id uint) error {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return err
	}
	if patient == nil {
		return ErrPatientNotFound
	}

	patient.Deactivate()
	if err := u.patientRepo.Update(u.db.WithContext(ctx), patient); err != nil {
		u.log.Warnf("Failed to deactivate patient: %+v", err)
		return err
	}

	return nil
}

// buildMeta assumes the repository already normalized page/per_page.
func buildMeta(filter *entity.ListFilter, total int64) *response.Meta {
	pages := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))
	return &response.Meta{
		Page:    filter.Page,
		PerPage: filter.PerPage,
		Total:   total,
		Pages:   pages,
	}
}
