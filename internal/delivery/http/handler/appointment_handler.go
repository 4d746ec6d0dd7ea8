package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"odontocare/internal/delivery/dto"
	"odontocare/internal/delivery/http/middleware"
	"odontocare/internal/usecase"
	"odontocare/pkg/response"
	"odontocare/pkg/validator"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}
	token, _ := middleware.GetRawTokenFromContext(r.Context())

	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.Create(r.Context(), token, userID, &req)
	if err != nil {
		h.respondCreateError(w, err)
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created successfully", appointment)
}

// respondCreateError maps the booking flow's failures. Upstream auth
// rejections keep their original status; every other verification failure is
// a 400 carrying the upstream status and body for diagnostics.
func (h *AppointmentHandler) respondCreateError(w http.ResponseWriter, err error) {
	var verification *usecase.VerificationFailedError
	if errors.As(err, &verification) {
		details := map[string]interface{}{
			"user_service_status": verification.UpstreamStatus,
			"user_service_body":   verification.UpstreamBody,
		}
		if verification.AuthFailure {
			response.Error(w, verification.UpstreamStatus, "Not authorized to verify "+verification.Entity, details)
			return
		}
		response.Error(w, http.StatusBadRequest, "The "+verification.Entity+" does not exist or is inactive", details)
		return
	}

	switch err {
	case usecase.ErrInvalidFecha:
		response.Error(w, http.StatusBadRequest, "Invalid fecha format", nil)
	case usecase.ErrAppointmentConflict:
		response.Error(w, http.StatusBadRequest, "The doctor already has a scheduled appointment at that date and time", nil)
	default:
		response.InternalServerError(w, "Failed to create appointment")
	}
}

func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &dto.ListAppointmentsRequest{
		FechaInicio: query.Get("fecha_inicio"),
		FechaFin:    query.Get("fecha_fin"),
		IDDoctor:    queryUint(r, "id_doctor"),
		IDCentro:    queryUint(r, "id_centro"),
		Estado:      query.Get("estado"),
	}

	appointments, err := h.appointmentUsecase.List(r.Context(), req)
	if err != nil {
		if err == usecase.ErrInvalidFecha {
			response.Error(w, http.StatusBadRequest, "Invalid fecha format", nil)
			return
		}
		response.InternalServerError(w, "Failed to list appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrAppointmentNotFound {
			response.NotFound(w, "Appointment not found")
			return
		}
		response.InternalServerError(w, "Failed to get appointment")
		return
	}

	response.Success(w, http.StatusOK, "Appointment retrieved successfully", appointment)
}

// Cancel is the only mutation appointments support.
func (h *AppointmentHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return
	}

	appointment, err := h.appointmentUsecase.Cancel(r.Context(), id)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentAlreadyCancelled:
			response.Error(w, http.StatusBadRequest, "The appointment is already cancelled", nil)
		default:
			response.InternalServerError(w, "Failed to cancel appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment cancelled successfully", appointment)
}
