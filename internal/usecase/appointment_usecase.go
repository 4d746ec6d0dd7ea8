package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"odontocare/internal/client/userservice"
	"odontocare/internal/converter"
	"odontocare/internal/delivery/dto"
	"odontocare/internal/domain/entity"
	"odontocare/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAppointmentNotFound         = errors.New("appointment not found")
	ErrAppointmentConflict         = errors.New("the doctor already has a scheduled appointment at that date and time")
	ErrAppointmentAlreadyCancelled = errors.New("appointment is already cancelled")
	ErrInvalidFecha                = errors.New("invalid fecha format, expected ISO 8601")
)

// VerificationFailedError reports a failed remote existence check. When the
// identity service rejected the forwarded token, AuthFailure is set and the
// upstream status must reach the caller unchanged.
type VerificationFailedError struct {
	Entity         string // paciente, doctor, centro
	AuthFailure    bool
	UpstreamStatus int    // 0 on transport failure
	UpstreamBody   string
}

func (e *VerificationFailedError) Error() string {
	if e.AuthFailure {
		return fmt.Sprintf("not authorized to verify %s", e.Entity)
	}
	return fmt.Sprintf("%s does not exist or is inactive", e.Entity)
}

type AppointmentUsecase interface {
	Create(ctx context.Context, token string, userID uint, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
	List(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error)
	Cancel(ctx context.Context, id uint) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userService     userservice.Client
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userService userservice.Client,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userService:     userService,
	}
}

// Create runs the full booking flow: parse and validate input, verify the
// three referenced entities against the identity service with the caller's
// token, check for a doctor/timestamp conflict, then insert. The verify calls
// and the conflict check complete in sequence before the insert; there is no
// cross-service rollback, so two concurrent requests for the same doctor and
// timestamp can both pass the check (known gap).
func (u *appointmentUsecase) Create(ctx context.Context, token string, userID uint, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	fecha, err := ParseFecha(req.Fecha)
	if err != nil {
		return nil, ErrInvalidFecha
	}

	type check struct {
		entity string
		verify func() (*userservice.VerifyResult, error)
	}
	checks := []check{
		{"paciente", func() (*userservice.VerifyResult, error) { return u.userService.VerifyPatient(ctx, token, req.IDPaciente) }},
		{"doctor", func() (*userservice.VerifyResult, error) { return u.userService.VerifyDoctor(ctx, token, req.IDDoctor) }},
		{"centro", func() (*userservice.VerifyResult, error) { return u.userService.VerifyCenter(ctx, token, req.IDCentro) }},
	}
	for _, c := range checks {
		if _, err := c.verify(); err != nil {
			return nil, u.verificationError(c.entity, err)
		}
	}

	conflict, err := u.appointmentRepo.FindScheduledConflict(u.db.WithContext(ctx), req.IDDoctor, fecha)
	if err != nil {
		u.log.Warnf("Failed conflict check for doctor %d: %+v", req.IDDoctor, err)
		return nil, err
	}
	if conflict != nil {
		return nil, ErrAppointmentConflict
	}

	appointment := &entity.Appointment{
		Fecha:             fecha,
		Motivo:            req.Motivo,
		Estado:            entity.AppointmentStatusScheduled,
		IDPaciente:        req.IDPaciente,
		IDDoctor:          req.IDDoctor,
		IDCentro:          req.IDCentro,
		IDUsuarioRegistra: userID,
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment created: id=%d, doctor=%d, fecha=%s", appointment.ID, appointment.IDDoctor, appointment.Fecha.Format(time.RFC3339))
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) Get(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) List(ctx context.Context, req *dto.ListAppointmentsRequest) (*dto.AppointmentListResponse, error) {
	filter := &entity.AppointmentFilter{
		IDDoctor: req.IDDoctor,
		IDCentro: req.IDCentro,
		Estado:   req.Estado,
	}
	if req.FechaInicio != "" {
		t, err := ParseFecha(req.FechaInicio)
		if err != nil {
			return nil, ErrInvalidFecha
		}
		filter.FechaInicio = &t
	}
	if req.FechaFin != "" {
		t, err := ParseFecha(req.FechaFin)
		if err != nil {
			return nil, ErrInvalidFecha
		}
		filter.FechaFin = &t
	}

	appointments, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), filter)
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Citas: converter.AppointmentsToResponses(appointments),
	}, nil
}

// Cancel moves an appointment to CANCELADA. A second cancellation is an
// error, not a no-op; the conditional UPDATE makes the lost race report
// already-cancelled instead of succeeding twice.
func (u *appointmentUsecase) Cancel(ctx context.Context, id uint) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %d: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.IsCancelled() {
		return nil, ErrAppointmentAlreadyCancelled
	}

	affectedRows, err := u.appointmentRepo.Cancel(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to cancel appointment %d: %+v", id, err)
		return nil, err
	}
	if affectedRows == 0 {
		return nil, ErrAppointmentAlreadyCancelled
	}

	appointment.Cancel()
	u.log.Infof("Appointment cancelled: id=%d", id)
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) verificationError(entityName string, err error) error {
	var upstream *userservice.UpstreamError
	if errors.As(err, &upstream) {
		return &VerificationFailedError{
			Entity:         entityName,
			AuthFailure:    upstream.IsAuthFailure(),
			UpstreamStatus: upstream.StatusCode,
			UpstreamBody:   upstream.Body,
		}
	}

	var transport *userservice.TransportError
	if errors.As(err, &transport) {
		return &VerificationFailedError{
			Entity:       entityName,
			UpstreamBody: transport.Error(),
		}
	}

	u.log.Warnf("Unexpected verify error for %s: %+v", entityName, err)
	return err
}

// ParseFecha accepts the ISO 8601 forms the services exchange: RFC 3339,
// the zone-less datetime, and a bare date.
func ParseFecha(value string) (time.Time, error) {
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized fecha %q", value)
}
