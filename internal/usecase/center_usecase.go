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

var ErrCenterNotFound = errors.New("center not found")

type CenterUsecase interface {
	Create(ctx context.Context, req *dto.CreateCenterRequest) (*dto.CenterResponse, error)
	Get(ctx context.Context, id uint) (*dto.CenterResponse, error)
	List(ctx context.Context, filter *entity.ListFilter) (*dto.CenterListResponse, *response.Meta, error)
	Update(ctx context.Context, id uint, req *dto.UpdateCenterRequest) (*dto.CenterResponse, error)
	Delete(ctx context.Context, id uint) error
}

type centerUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	centerRepo repository.CenterRepository
}

func NewCenterUsecase(db *gorm.DB, log *logrus.Logger, centerRepo repository.CenterRepository) CenterUsecase {
	return &centerUsecase{
		db:         db,
		log:        log,
		centerRepo: centerRepo,
	}
}

func (u *centerUsecase) Create(ctx context.Context, req *dto.CreateCenterRequest) (*dto.CenterResponse, error) {
	estado := entity.RecordStatusActive
	if req.Estado != "" {
		estado = entity.RecordStatus(req.Estado)
	}

	center := &entity.Center{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Estado:    estado,
	}

	if err := u.centerRepo.Create(u.db.WithContext(ctx), center); err != nil {
		u.log.Warnf("Failed to create center: %+v", err)
		return nil, err
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) Get(ctx context.Context, id uint) (*dto.CenterResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) List(ctx context.Context, filter *entity.ListFilter) (*dto.CenterListResponse, *response.Meta, error) {
	centers, total, err := u.centerRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list centers: %+v", err)
		return nil, nil, err
	}

	return &dto.CenterListResponse{
		Centros: converter.CentersToResponses(centers),
	}, buildMeta(filter, total), nil
}

func (u *centerUsecase) Update(ctx context.Context, id uint, req *dto.UpdateCenterRequest) (*dto.CenterResponse, error) {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return nil, err
	}
	if center == nil {
		return nil, ErrCenterNotFound
	}

	if req.Nombre != nil {
		center.Nombre = *req.Nombre
	}
	if req.Direccion != nil {
		center.Direccion = *req.Direccion
	}
	if req.Estado != nil {
		center.Estado = entity.RecordStatus(*req.Estado)
	}

	if err := u.centerRepo.Update(u.db.WithContext(ctx), center); err != nil {
		u.log.Warnf("Failed to update center: %+v", err)
		return nil, err
	}

	return converter.CenterToResponse(center), nil
}

func (u *centerUsecase) Delete(ctx context.Context, id uint) error {
	center, err := u.centerRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find center: %+v", err)
		return err
	}
	if center == nil {
		return ErrCenterNotFound
	}

	center.Deactivate()
	if err := u.centerRepo.Update(u.db.WithContext(ctx), center); err != nil {
		u.log.Warnf("Failed to deactivate center: %+v", err)
		return err
	}

	return nil
}
