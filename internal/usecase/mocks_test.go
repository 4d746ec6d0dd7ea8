package usecase

import (
	"context"
	"errors"
	"io"
	"sync/atomic"
	"time"

	"odontocare/internal/client/userservice"
	"odontocare/internal/domain/entity"
	"odontocare/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// --- MockAppointmentRepository ---

var _ repository.AppointmentRepository = (*MockAppointmentRepository)(nil)

type MockAppointmentRepository struct {
	CreateFunc                func(db *gorm.DB, appointment *entity.Appointment) error
	FindByIDFunc              func(db *gorm.DB, id uint) (*entity.Appointment, error)
	FindAllFunc               func(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error)
	FindScheduledConflictFunc func(db *gorm.DB, doctorID uint, fecha time.Time) (*entity.Appointment, error)
	CancelFunc                func(db *gorm.DB, id uint) (int64, error)

	CreateCallCount int32
	CancelCallCount int32
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	atomic.AddInt32(&m.CreateCallCount, 1)
	if m.CreateFunc != nil {
		return m.CreateFunc(db, appointment)
	}
	return nil
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uint) (*entity.Appointment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) FindScheduledConflict(db *gorm.DB, doctorID uint, fecha time.Time) (*entity.Appointment, error) {
	if m.FindScheduledConflictFunc != nil {
		return m.FindScheduledConflictFunc(db, doctorID, fecha)
	}
	return nil, nil
}

func (m *MockAppointmentRepository) Cancel(db *gorm.DB, id uint) (int64, error) {
	atomic.AddInt32(&m.CancelCallCount, 1)
	if m.CancelFunc != nil {
		return m.CancelFunc(db, id)
	}
	return 1, nil
}

// --- MockUserRepository ---

var _ repository.UserRepository = (*MockUserRepository)(nil)

type MockUserRepository struct {
	CreateFunc         func(db *gorm.DB, user *entity.User) error
	FindByUsernameFunc func(db *gorm.DB, username string) (*entity.User, error)
	FindByIDFunc       func(db *gorm.DB, id uint) (*entity.User, error)
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, user)
	}
	return nil
}

func (m *MockUserRepository) FindByUsername(db *gorm.DB, username string) (*entity.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(db, username)
	}
	return nil, errors.New("FindByUsernameFunc not implemented in mock")
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

// --- MockPatientRepository ---

var _ repository.PatientRepository = (*MockPatientRepository)(nil)

type MockPatientRepository struct {
	CreateFunc         func(db *gorm.DB, patient *entity.Patient) error
	FindByIDFunc       func(db *gorm.DB, id uint) (*entity.Patient, error)
	FindActiveByIDFunc func(db *gorm.DB, id uint) (*entity.Patient, error)
	FindAllFunc        func(db *gorm.DB, filter *entity.ListFilter) ([]entity.Patient, int64, error)
	UpdateFunc         func(db *gorm.DB, patient *entity.Patient) error

	UpdateCallCount int32
}

func (m *MockPatientRepository) Create(db *gorm.DB, patient *entity.Patient) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(db, patient)
	}
	return nil
}

func (m *MockPatientRepository) FindByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(db, id)
	}
	return nil, errors.New("FindByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) FindActiveByID(db *gorm.DB, id uint) (*entity.Patient, error) {
	if m.FindActiveByIDFunc != nil {
		return m.FindActiveByIDFunc(db, id)
	}
	return nil, errors.New("FindActiveByIDFunc not implemented in mock")
}

func (m *MockPatientRepository) FindAll(db *gorm.DB, filter *entity.ListFilter) ([]entity.Patient, int64, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(db, filter)
	}
	return nil, 0, nil
}

func (m *MockPatientRepository) Update(db *gorm.DB, patient *entity.Patient) error {
	atomic.AddInt32(&m.UpdateCallCount, 1)
	if m.UpdateFunc != nil {
		return m.UpdateFunc(db, patient)
	}
	return nil
}

// --- MockTokenStore ---

var _ TokenStore = (*MockTokenStore)(nil)

type MockTokenStore struct {
	StoreFunc  func(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error
	RevokeFunc func(ctx context.Context, userID uint, tokenID string) error

	StoreCallCount  int32
	RevokeCallCount int32
}

func (m *MockTokenStore) Store(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	atomic.AddInt32(&m.StoreCallCount, 1)
	if m.StoreFunc != nil {
		return m.StoreFunc(ctx, userID, tokenID, ttl)
	}
	return nil
}

func (m *MockTokenStore) Revoke(ctx context.Context, userID uint, tokenID string) error {
	atomic.AddInt32(&m.RevokeCallCount, 1)
	if m.RevokeFunc != nil {
		return m.RevokeFunc(ctx, userID, tokenID)
	}
	return nil
}

// --- MockVerifyClient ---

var _ userservice.Client = (*MockVerifyClient)(nil)

type MockVerifyClient struct {
	VerifyPatientFunc func(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error)
	VerifyDoctorFunc  func(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error)
	VerifyCenterFunc  func(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error)

	VerifyPatientCallCount int32
	VerifyDoctorCallCount  int32
	VerifyCenterCallCount  int32
}

func (m *MockVerifyClient) VerifyPatient(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error) {
	atomic.AddInt32(&m.VerifyPatientCallCount, 1)
	if m.VerifyPatientFunc != nil {
		return m.VerifyPatientFunc(ctx, token, id)
	}
	return &userservice.VerifyResult{Exists: true, ID: id}, nil
}

func (m *MockVerifyClient) VerifyDoctor(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error) {
	atomic.AddInt32(&m.VerifyDoctorCallCount, 1)
	if m.VerifyDoctorFunc != nil {
		return m.VerifyDoctorFunc(ctx, token, id)
	}
	return &userservice.VerifyResult{Exists: true, ID: id}, nil
}

func (m *MockVerifyClient) VerifyCenter(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error) {
	atomic.AddInt32(&m.VerifyCenterCallCount, 1)
	if m.VerifyCenterFunc != nil {
		return m.VerifyCenterFunc(ctx, token, id)
	}
	return &userservice.VerifyResult{Exists: true, ID: id}, nil
}

// --- shared fixtures ---

// testDB is never dereferenced by the mocks; the usecases only pass it along.
func testDB() *gorm.DB {
	db := &gorm.DB{Config: &gorm.Config{}}
	db.Statement = &gorm.Statement{DB: db}
	return db
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
