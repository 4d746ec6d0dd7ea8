package usecase

import (
	"context"
	"testing"

	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestPatientCreate_DefaultsEstadoToActivo(t *testing.T) {
	repo := &MockPatientRepository{
		CreateFunc: func(db *gorm.DB, patient *entity.Patient) error {
			patient.ID = 3
			return nil
		},
	}
	uc := NewPatientUsecase(testDB(), testLogger(), repo)

	resp, err := uc.Create(context.Background(), &dto.CreatePatientRequest{Nombre: "Ana Gómez", Telefono: "555-0101"})

	assert.NoError(t, err)
	assert.Equal(t, uint(3), resp.ID)
	assert.Equal(t, string(entity.RecordStatusActive), resp.Estado)
}

func TestPatientGet_NotFound(t *testing.T) {
	repo := &MockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Patient, error) {
			return nil, nil
		},
	}
	uc := NewPatientUsecase(testDB(), testLogger(), repo)

	_, err := uc.Get(context.Background(), 8)

	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPatientList_BuildsMeta(t *testing.T) {
	repo := &MockPatientRepository{
		FindAllFunc: func(db *gorm.DB, filter *entity.ListFilter) ([]entity.Patient, int64, error) {
			// The real repository normalizes paging before querying.
			filter.Page = 2
			filter.PerPage = 10
			return []entity.Patient{{ID: 11, Nombre: "Ana", Estado: entity.RecordStatusActive}}, 25, nil
		},
	}
	uc := NewPatientUsecase(testDB(), testLogger(), repo)

	resp, meta, err := uc.List(context.Background(), &entity.ListFilter{Page: 2, PerPage: 10})

	assert.NoError(t, err)
	assert.Len(t, resp.Pacientes, 1)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(25), meta.Total)
	assert.Equal(t, 3, meta.Pages)
}

func TestPatientUpdate_PartialFields(t *testing.T) {
	repo := &MockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Nombre: "Ana", Telefono: "555-0101", Estado: entity.RecordStatusActive}, nil
		},
	}
	uc := NewPatientUsecase(testDB(), testLogger(), repo)

	telefono := "555-0202"
	resp, err := uc.Update(context.Background(), 3, &dto.UpdatePatientRequest{Telefono: &telefono})

	assert.NoError(t, err)
	assert.Equal(t, "Ana", resp.Nombre)
	assert.Equal(t, "555-0202", resp.Telefono)
	assert.Equal(t, int32(1), repo.UpdateCallCount)
}

func TestPatientUpdate_EstadoFlipRestores(t *testing.T) {
	repo := &MockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Nombre: "Ana", Estado: entity.RecordStatusInactive}, nil
		},
	}
	uc := NewPatientUsecase(testDB(), testLogger(), repo)

	estado := string(entity.RecordStatusActive)
	resp, err := uc.Update(context.Background(), 3, &dto.UpdatePatientRequest{Estado: &estado})

	assert.NoError(t, err)
	assert.Equal(t, "ACTIVO", resp.Estado)
}

func TestPatientDelete_SoftDeletes(t *testing.T) {
	var updated *entity.Patient
	repo := &MockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Patient, error) {
			return &entity.Patient{ID: id, Nombre: "Ana", Estado: entity.RecordStatusActive}, nil
		},
		UpdateFunc: func(db *gorm.DB, patient *entity.Patient) error {
			updated = patient
			return nil
		},
	}
	uc := NewPatientUsecase(testDB(), testLogger(), repo)

	err := uc.Delete(context.Background(), 3)

	assert.NoError(t, err)
	assert.Equal(t, entity.RecordStatusInactive, updated.Estado)
}

func TestPatientDelete_NotFound(t *testing.T) {
	repo := &MockPatientRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Patient, error) {
			return nil, nil
		},
	}
	uc := NewPatientUsecase(testDB(), testLogger(), repo)

	err := uc.Delete(context.Background(), 3)

	assert.ErrorIs(t, err, ErrPatientNotFound)
	assert.Equal(t, int32(0), repo.UpdateCallCount)
}
