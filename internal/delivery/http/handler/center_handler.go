package handler

import (
	"encoding/json"
	"net/http"

	"odontocare/internal/delivery/dto"
	"odontocare/internal/usecase"
	"odontocare/pkg/response"
	"odontocare/pkg/validator"
)

type CenterHandler struct {
	centerUsecase usecase.CenterUsecase
	validator     *validator.CustomValidator
}

func NewCenterHandler(centerUsecase usecase.CenterUsecase, validator *validator.CustomValidator) *CenterHandler {
	return &CenterHandler{
		centerUsecase: centerUsecase,
		validator:     validator,
	}
}

func (h *CenterHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	center, err := h.centerUsecase.Create(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to create center")
		return
	}

	response.Success(w, http.StatusCreated, "Center created successfully", center)
}

func (h *CenterHandler) List(w http.ResponseWriter, r *http.Request) {
	centers, meta, err := h.centerUsecase.List(r.Context(), listFilterFromQuery(r))
	if err != nil {
		response.InternalServerError(w, "Failed to list centers")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Centers retrieved successfully", centers, meta)
}

func (h *CenterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid center ID", nil)
		return
	}

	center, err := h.centerUsecase.Get(r.Context(), id)
	if err != nil {
		if err == usecase.ErrCenterNotFound {
			response.NotFound(w, "Center not found")
			return
		}
		response.InternalServerError(w, "Failed to get center")
		return
	}

	response.Success(w, http.StatusOK, "Center retrieved successfully", center)
}

func (h *CenterHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid center ID", nil)
		return
	}

	var req dto.UpdateCenterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	center, err := h.centerUsecase.Update(r.Context(), id, &req)
	if err != nil {
		if err == usecase.ErrCenterNotFound {
			response.NotFound(w, "Center not found")
			return
		}
		response.InternalServerError(w, "Failed to update center")
		return
	}

	response.Success(w, http.StatusOK, "Center updated successfully", center)
}

func (h *CenterHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid center ID", nil)
		return
	}

	if err := h.centerUsecase.Delete(r.Context(), id); err != nil {
		if err == usecase.ErrCenterNotFound {
			response.NotFound(w, "Center not found")
			return
		}
		response.InternalServerError(w, "Failed to deactivate center")
		return
	}

	response.Success(w, http.StatusOK, "Center deactivated successfully", nil)
}
