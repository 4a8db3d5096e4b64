package adaptor

import (
	"net/http"

	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/dto/response"
	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// GetAllUsers handles GET /api/admin/users
func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAllUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// GetUser handles GET /api/admin/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "get user")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// UpdateUser handles PUT /api/admin/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateUserRequest
	if !decodeAndValidate(w, r, &req, "Validation failed") {
		return
	}

	resp, err := h.service.UpdateUser(r.Context(), chi.URLParam(r, "id"), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// SetAdmin handles PUT /api/admin/users/{id}/admin
func (h *UserHandler) SetAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.SetAdminRequest
	if !decodeAndValidate(w, r, &req, "isAdmin is required") {
		return
	}

	resp, err := h.service.SetAdmin(r.Context(), chi.URLParam(r, "id"), *req.IsAdmin)
	if err != nil {
		handleServiceError(w, h.log, err, "set admin status")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// DeleteUser handles DELETE /api/admin/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete user")
		return
	}

	utils.ResponseSuccess(w, response.MessageResponse{
		Success: true,
		Message: "User and related evaluations deleted successfully",
	})
}
