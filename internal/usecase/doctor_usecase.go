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

var ErrDoctorNotFound = errors.New("doctor not found")

type DoctorUsecase interface {
	Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	Get(ctx context.Context, id uint) (*dto.DoctorResponse, error)
	List(ctx context.Context, filter *entity.ListFilter) (*dto.DoctorListResponse, *response.Meta, error)
	Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error)
	Delete(ctx context.Context, id uint) error
}

type doctorUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
}

func NewDoctorUsecase(db *gorm.DB, log *logrus.Logger, doctorRepo repository.DoctorRepository) DoctorUsecase {
	return &doctorUsecase{
		db:         db,
		log:        log,
		doctorRepo: doctorRepo,
	}
}

func (u *doctorUsecase) Create(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	estado := entity.RecordStatusActive
	if req.Estado != "" {
		estado = entity.RecordStatus(req.Estado)
	}

	doctor := &entity.Doctor{
		Nombre:       req.Nombre,
		Especialidad: req.Especialidad,
		Estado:       estado,
	}

	if err := u.doctorRepo.Create(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Get(ctx context.Context, id uint) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) List(ctx context.Context, filter *entity.ListFilter) (*dto.DoctorListResponse, *response.Meta, error) {
	doctors, total, err := u.doctorRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, nil, err
	}

	return &dto.DoctorListResponse{
		Doctores: converter.DoctorsToResponses(doctors),
	}, buildMeta(filter, total), nil
}

func (u *doctorUsecase) Update(ctx context.Context, id uint, req *dto.UpdateDoctorRequest) (*dto.DoctorResponse, error) {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil {
		return nil, ErrDoctorNotFound
	}

	if req.Nombre != nil {
		doctor.Nombre = *req.Nombre
	}
	if req.Especialidad != nil {
		doctor.Especialidad = *req.Especialidad
	}
	if req.Estado != nil {
		doctor.Estado = entity.RecordStatus(*req.Estado)
	}

	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to update doctor: %+v", err)
		return nil, err
	}

	return converter.DoctorToResponse(doctor), nil
}

func (u *doctorUsecase) Delete(ctx context.Context, id uint) error {
	doctor, err := u.doctorRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return err
	}
	if doctor == nil {
		return ErrDoctorNotFound
	}

	doctor.Deactivate()
	if err := u.doctorRepo.Update(u.db.WithContext(ctx), doctor); err != nil {
		u.log.Warnf("Failed to deactivate doctor: %+v", err)
		return err
	}

	return nil
}
