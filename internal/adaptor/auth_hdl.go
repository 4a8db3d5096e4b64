package adaptor

import (
	"net/http"

	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// Authenticate handles POST /api/auth
func (h *AuthHandler) Authenticate(w http.ResponseWriter, r *http.Request) {
	var req request.AuthRequest
	if !decodeAndValidate(w, r, &req, "Username and phone are required") {
		return
	}

	resp, err := h.service.Authenticate(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "authenticate")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// CheckAdmin handles GET /api/check-admin/{phone}
func (h *AuthHandler) CheckAdmin(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.CheckAdmin(r.Context(), chi.URLParam(r, "phone"))
	if err != nil {
		handleServiceError(w, h.log, err, "check admin")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// UpdateAdmin handles POST /api/update-admin
func (h *AuthHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	var req request.UpdateAdminRequest
	if !decodeAndValidate(w, r, &req, "Phone number and isAdmin are required") {
		return
	}

	resp, err := h.service.UpdateAdminStatus(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update admin status")
		return
	}

	utils.ResponseSuccess(w, resp)
}
