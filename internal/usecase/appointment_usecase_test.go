package usecase

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"odontocare/internal/client/userservice"
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newCreateRequest() *dto.CreateAppointmentRequest {
	return &dto.CreateAppointmentRequest{
		Fecha:      "2026-01-20T10:00:00",
		Motivo:     "Limpieza dental",
		IDPaciente: 1,
		IDDoctor:   2,
		IDCentro:   3,
	}
}

func TestAppointmentCreate_Success(t *testing.T) {
	repo := &MockAppointmentRepository{
		CreateFunc: func(db *gorm.DB, appointment *entity.Appointment) error {
			appointment.ID = 7
			return nil
		},
	}
	verify := &MockVerifyClient{}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, verify)

	resp, err := uc.Create(context.Background(), "token", 42, newCreateRequest())

	assert.NoError(t, err)
	assert.Equal(t, uint(7), resp.ID)
	assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Estado)
	assert.Equal(t, uint(42), resp.IDUsuarioRegistra)
	assert.Equal(t, int32(1), verify.VerifyPatientCallCount)
	assert.Equal(t, int32(1), verify.VerifyDoctorCallCount)
	assert.Equal(t, int32(1), verify.VerifyCenterCallCount)
	assert.Equal(t, int32(1), repo.CreateCallCount)
}

func TestAppointmentCreate_InvalidFecha(t *testing.T) {
	repo := &MockAppointmentRepository{}
	verify := &MockVerifyClient{}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, verify)

	req := newCreateRequest()
	req.Fecha = "20/01/2026 10:00"
	_, err := uc.Create(context.Background(), "token", 42, req)

	assert.ErrorIs(t, err, ErrInvalidFecha)
	assert.Equal(t, int32(0), verify.VerifyPatientCallCount)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestAppointmentCreate_PatientNotFound(t *testing.T) {
	repo := &MockAppointmentRepository{}
	verify := &MockVerifyClient{
		VerifyPatientFunc: func(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error) {
			return nil, &userservice.UpstreamError{StatusCode: http.StatusNotFound, Body: `{"exists": false}`}
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, verify)

	_, err := uc.Create(context.Background(), "token", 42, newCreateRequest())

	var failed *VerificationFailedError
	assert.ErrorAs(t, err, &failed)
	assert.Equal(t, "paciente", failed.Entity)
	assert.False(t, failed.AuthFailure)
	assert.Equal(t, http.StatusNotFound, failed.UpstreamStatus)
	// Verification is sequential; the first failure short-circuits.
	assert.Equal(t, int32(0), verify.VerifyDoctorCallCount)
	assert.Equal(t, int32(0), verify.VerifyCenterCallCount)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestAppointmentCreate_UpstreamAuthFailurePreserved(t *testing.T) {
	repo := &MockAppointmentRepository{}
	verify := &MockVerifyClient{
		VerifyDoctorFunc: func(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error) {
			return nil, &userservice.UpstreamError{StatusCode: http.StatusUnauthorized, Body: `{"error": "Token expirado"}`}
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, verify)

	_, err := uc.Create(context.Background(), "token", 42, newCreateRequest())

	var failed *VerificationFailedError
	assert.ErrorAs(t, err, &failed)
	assert.Equal(t, "doctor", failed.Entity)
	assert.True(t, failed.AuthFailure)
	assert.Equal(t, http.StatusUnauthorized, failed.UpstreamStatus)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestAppointmentCreate_TransportErrorRejectsBooking(t *testing.T) {
	repo := &MockAppointmentRepository{}
	verify := &MockVerifyClient{
		VerifyCenterFunc: func(ctx context.Context, token string, id uint) (*userservice.VerifyResult, error) {
			return nil, &userservice.TransportError{Err: errors.New("connection refused")}
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, verify)

	_, err := uc.Create(context.Background(), "token", 42, newCreateRequest())

	var failed *VerificationFailedError
	assert.ErrorAs(t, err, &failed)
	assert.Equal(t, "centro", failed.Entity)
	assert.False(t, failed.AuthFailure)
	assert.Zero(t, failed.UpstreamStatus)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestAppointmentCreate_DoctorConflict(t *testing.T) {
	fecha, _ := ParseFecha("2026-01-20T10:00:00")
	repo := &MockAppointmentRepository{
		FindScheduledConflictFunc: func(db *gorm.DB, doctorID uint, got time.Time) (*entity.Appointment, error) {
			assert.Equal(t, uint(2), doctorID)
			assert.True(t, fecha.Equal(got))
			return &entity.Appointment{ID: 99, IDDoctor: doctorID, Fecha: got, Estado: entity.AppointmentStatusScheduled}, nil
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, &MockVerifyClient{})

	_, err := uc.Create(context.Background(), "token", 42, newCreateRequest())

	assert.ErrorIs(t, err, ErrAppointmentConflict)
	assert.Equal(t, int32(0), repo.CreateCallCount)
}

func TestAppointmentGet_NotFound(t *testing.T) {
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Appointment, error) {
			return nil, nil
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, &MockVerifyClient{})

	_, err := uc.Get(context.Background(), 5)

	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestAppointmentList_ParsesDateRange(t *testing.T) {
	var captured *entity.AppointmentFilter
	repo := &MockAppointmentRepository{
		FindAllFunc: func(db *gorm.DB, filter *entity.AppointmentFilter) ([]entity.Appointment, error) {
			captured = filter
			return []entity.Appointment{{ID: 1, Estado: entity.AppointmentStatusScheduled}}, nil
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, &MockVerifyClient{})

	resp, err := uc.List(context.Background(), &dto.ListAppointmentsRequest{
		FechaInicio: "2026-01-01",
		FechaFin:    "2026-01-31",
		IDDoctor:    2,
	})

	assert.NoError(t, err)
	assert.Len(t, resp.Citas, 1)
	assert.NotNil(t, captured.FechaInicio)
	assert.NotNil(t, captured.FechaFin)
	assert.Equal(t, uint(2), captured.IDDoctor)
}

func TestAppointmentList_InvalidDateRange(t *testing.T) {
	uc := NewAppointmentUsecase(testDB(), testLogger(), &MockAppointmentRepository{}, &MockVerifyClient{})

	_, err := uc.List(context.Background(), &dto.ListAppointmentsRequest{FechaInicio: "no-date"})

	assert.ErrorIs(t, err, ErrInvalidFecha)
}

func TestAppointmentCancel_Success(t *testing.T) {
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, Estado: entity.AppointmentStatusScheduled}, nil
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, &MockVerifyClient{})

	resp, err := uc.Cancel(context.Background(), 4)

	assert.NoError(t, err)
	assert.Equal(t, string(entity.AppointmentStatusCancelled), resp.Estado)
	assert.Equal(t, int32(1), repo.CancelCallCount)
}

func TestAppointmentCancel_AlreadyCancelled(t *testing.T) {
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, Estado: entity.AppointmentStatusCancelled}, nil
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, &MockVerifyClient{})

	_, err := uc.Cancel(context.Background(), 4)

	assert.ErrorIs(t, err, ErrAppointmentAlreadyCancelled)
	assert.Equal(t, int32(0), repo.CancelCallCount)
}

func TestAppointmentCancel_RaceReportsAlreadyCancelled(t *testing.T) {
	repo := &MockAppointmentRepository{
		FindByIDFunc: func(db *gorm.DB, id uint) (*entity.Appointment, error) {
			return &entity.Appointment{ID: id, Estado: entity.AppointmentStatusScheduled}, nil
		},
		CancelFunc: func(db *gorm.DB, id uint) (int64, error) {
			// Another request cancelled between the read and the update.
			return 0, nil
		},
	}
	uc := NewAppointmentUsecase(testDB(), testLogger(), repo, &MockVerifyClient{})

	_, err := uc.Cancel(context.Background(), 4)

	assert.ErrorIs(t, err, ErrAppointmentAlreadyCancelled)
}

func TestParseFecha(t *testing.T) {
	cases := []struct {
		value string
		valid bool
	}{
		{"2026-01-20T10:00:00Z", true},
		{"2026-01-20T10:00:00-05:00", true},
		{"2026-01-20T10:00:00", true},
		{"2026-01-20", true},
		{"20/01/2026", false},
		{"not a date", false},
		{"", false},
	}
	for _, c := range cases {
		_, err := ParseFecha(c.value)
		if c.valid {
			assert.NoError(t, err, c.value)
		} else {
			assert.Error(t, err, c.value)
		}
	}
}
