package adaptor

import (
	"net/http"

	"beton-feedback/internal/dto/response"
	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EvaluationHandler struct {
	service usecase.EvaluationService
	log     *zap.Logger
}

func NewEvaluationHandler(service usecase.EvaluationService, log *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		service: service,
		log:     log.With(zap.String("handler", "evaluation")),
	}
}

// GetAllEvaluations handles GET /api/admin/evaluations
func (h *EvaluationHandler) GetAllEvaluations(w http.ResponseWriter, r *http.Request) {
	resp, err := h.service.GetAllEvaluations(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "get evaluations")
		return
	}

	utils.ResponseSuccess(w, resp)
}

// DeleteEvaluation handles DELETE /api/admin/evaluations/{id}
func (h *EvaluationHandler) DeleteEvaluation(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEvaluation(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, h.log, err, "delete evaluation")
		return
	}

	utils.ResponseSuccess(w, response.MessageResponse{
		Success: true,
		Message: "Evaluation deleted successfully",
	})
}

// DownloadReport handles GET /api/admin/evaluations/{id}/report
func (h *EvaluationHandler) DownloadReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.service.GetReport(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, h.log, err, "generate report")
		return
	}

	utils.ResponseAttachment(w, report.ContentType, report.Filename, report.Body)
}
