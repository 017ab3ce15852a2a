package adaptor

import (
	"encoding/json"
	"net/http"

	"cinema-manager/internal/dto/request"
	"cinema-manager/internal/usecase"
	"cinema-manager/pkg/utils"

	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// AssignRole handles PUT /api/admin/assign/employee
func (h *AdminHandler) AssignRole(w http.ResponseWriter, r *http.Request) {
	var req request.AssignRoleRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	message, err := h.service.AssignRole(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "assign role")
		return
	}

	utils.ResponseSuccess(w, message, nil)
}
