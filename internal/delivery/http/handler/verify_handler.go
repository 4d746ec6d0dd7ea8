package handler

import (
	"context"
	"net/http"

	"odontocare/internal/delivery/dto"
	"odontocare/internal/usecase"
	"odontocare/pkg/response"
)

// VerifyHandler serves the inter-service existence checks. Responses are
// flat JSON, not the envelope: they are the wire contract parsed by the
// appointment service and expose nothing beyond existence and id.
type VerifyHandler struct {
	verifyUsecase usecase.VerifyUsecase
}

func NewVerifyHandler(verifyUsecase usecase.VerifyUsecase) *VerifyHandler {
	return &VerifyHandler{verifyUsecase: verifyUsecase}
}

func (h *VerifyHandler) VerifyPatient(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.verifyUsecase.VerifyPatient, "Patient not found")
}

func (h *VerifyHandler) VerifyDoctor(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.verifyUsecase.VerifyDoctor, "Doctor not found")
}

func (h *VerifyHandler) VerifyCenter(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, h.verifyUsecase.VerifyCenter, "Center not found")
}

func (h *VerifyHandler) respond(
	w http.ResponseWriter,
	r *http.Request,
	verify func(ctx context.Context, id uint) (*dto.VerifyResponse, error),
	notFoundMessage string,
) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid ID", nil)
		return
	}

	result, err := verify(r.Context(), id)
	if err != nil {
		response.InternalServerError(w, "Failed to verify")
		return
	}

	if !result.Exists {
		response.JSON(w, http.StatusNotFound, dto.VerifyResponse{
			Exists: false,
			Error:  notFoundMessage,
		})
		return
	}

	response.JSON(w, http.StatusOK, result)
}
