package adaptor

import (
	"net/http"

	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

type SurveyHandler struct {
	service usecase.SurveyService
	log     *zap.Logger
}

func NewSurveyHandler(service usecase.SurveyService, log *zap.Logger) *SurveyHandler {
	return &SurveyHandler{
		service: service,
		log:     log.With(zap.String("handler", "survey")),
	}
}

// GetProducts handles GET /api/products
func (h *SurveyHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.GetProducts(r.Context()))
}

// GetQuestions handles GET /api/questions
func (h *SurveyHandler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	utils.ResponseSuccess(w, h.service.GetQuestions(r.Context()))
}

// SubmitEvaluation handles POST /api/evaluate
func (h *SurveyHandler) SubmitEvaluation(w http.ResponseWriter, r *http.Request) {
	var req request.SubmitEvaluationRequest
	if !decodeAndValidate(w, r, &req, "All fields are required") {
		return
	}

	resp, err := h.service.SubmitEvaluation(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit evaluation")
		return
	}

	utils.ResponseSuccess(w, resp)
}
