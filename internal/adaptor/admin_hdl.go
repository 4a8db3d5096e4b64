package adaptor

import (
	"net/http"

	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/utils"

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

// GetStatistics handles GET /api/admin/statistics
func (h *AdminHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetStatistics(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get statistics")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// ExportEvaluations handles GET /api/admin/export/evaluations
func (h *AdminHandler) ExportEvaluations(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.ExportEvaluations(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "export evaluations")
		return
	}

	utils.ResponseAttachment(w, file.ContentType, file.Filename, file.Body)
}

// ExportUsers handles GET /api/admin/export/users
func (h *AdminHandler) ExportUsers(w http.ResponseWriter, r *http.Request) {
	file, err := h.service.ExportUsers(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "export users")
		return
	}

	utils.ResponseAttachment(w, file.ContentType, file.Filename, file.Body)
}

// GetLogs handles GET /api/admin/logs
func (h *AdminHandler) GetLogs(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.GetLogs(r.Context()))
}
