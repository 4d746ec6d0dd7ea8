package usecase

import (
	"context"

	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// VerifyUsecase backs the minimal existence endpoints other services call.
// Only ACTIVO records verify, and nothing beyond existence and id is exposed.
type VerifyUsecase interface {
	VerifyPatient(ctx context.Context, id uint) (*dto.VerifyResponse, error)
	VerifyDoctor(ctx context.Context, id uint) (*dto.VerifyResponse, error)
	VerifyCenter(ctx context.Context, id uint) (*dto.VerifyResponse, error)
}

type verifyUsecase struct {
	db          *gorm.DB
	log         *logrus.Logger
	patientRepo repository.PatientRepository
	doctorRepo  repository.DoctorRepository
	centerRepo  repository.CenterRepository
}

func NewVerifyUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	centerRepo repository.CenterRepository,
) VerifyUsecase {
	return &verifyUsecase{
		db:          db,
		log:         log,
		patientRepo: patientRepo,
		doctorRepo:  doctorRepo,
		centerRepo:  centerRepo,
	}
}

func (u *verifyUsecase) VerifyPatient(ctx context.Context, id uint) (*dto.VerifyResponse, error) {
	patient, err := u.patientRepo.FindActiveByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to verify patient %d: %+v", id, err)
		return nil, err
	}
	if patient == nil {
		return &dto.VerifyResponse{Exists: false}, nil
	}
	return &dto.VerifyResponse{Exists: true, ID: patient.ID}, nil
}

func (u *verifyUsecase) VerifyDoctor(ctx context.Context, id uint) (*dto.VerifyResponse, error) {
	doctor, err := u.doctorRepo.FindActiveByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to verify doctor %d: %+v", id, err)
		return nil, err
	}
	if doctor == nil {
		return &dto.VerifyResponse{Exists: false}, nil
	}
	return &dto.VerifyResponse{Exists: true, ID: doctor.ID}, nil
}

func (u *verifyUsecase) VerifyCenter(ctx context.Context, id uint) (*dto.VerifyResponse, error) {
	center, err := u.centerRepo.FindActiveByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to verify center %d: %+v", id, err)
		return nil, err
	}
	if center == nil {
		return &dto.VerifyResponse{Exists: false}, nil
	}
	return &dto.VerifyResponse{Exists: true, ID: center.ID}, nil
}
