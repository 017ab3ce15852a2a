package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type HallHandler struct {
	service usecase.HallService
	log     *zap.Logger
}

func NewHallHandler(service usecase.HallService, log *zap.Logger) *HallHandler {
	return &HallHandler{
		service: service,
		log:     log.With(zap.String("handler", "hall")),
	}
}

// GetHalls handles GET /api/halls/all
func (h *HallHandler) GetHalls(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.GetHalls(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get halls")
		return
	}

	utils.ResponseSuccess(w, "Halls retrieved successfully", halls)
}

// CreateHall handles POST /api/halls/add
func (h *HallHandler) CreateHall(w http.ResponseWriter, r *http.Request) {
	var req request.HallRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.CreateHall(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create hall")
		return
	}

	utils.ResponseCreated(w, "Hall created successfully", hall)
}

// UpdateHall handles PUT /api/halls/edit/{id}
func (h *HallHandler) UpdateHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	var req request.HallUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	hall, err := h.service.UpdateHall(r.Context(), hallID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update hall")
		return
	}

	utils.ResponseSuccess(w, "Hall updated successfully", hall)
}

// DeleteHall handles DELETE /api/halls/delete/{id}
func (h *HallHandler) DeleteHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	if err := h.service.DeleteHall(r.Context(), hallID); err != nil {
		handleServiceError(w, h.log, err, "delete hall")
		return
	}

	utils.ResponseSuccess(w, "Hall deleted successfully", nil)
}

// RestoreHall handles PUT /api/halls/restore/{id}
func (h *HallHandler) RestoreHall(w http.ResponseWriter, r *http.Request) {
	hallID := chi.URLParam(r, "id")
	if hallID == "" {
		utils.ResponseBadRequest(w, "Hall ID is required", nil)
		return
	}

	if err := h.service.RestoreHall(r.Context(), hallID); err != nil {
		handleServiceError(w, h.log, err, "restore hall")
		return
	}

	utils.ResponseSuccess(w, "Hall restored successfully", nil)
}
