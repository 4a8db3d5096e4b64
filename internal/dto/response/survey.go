package response

import "beton-feedback/internal/catalog"

type ProductsResponse struct {
	Success  bool     `json:"success"`
	Products []string `json:"products"`
}

type QuestionsResponse struct {
	Success   bool               `json:"success"`
	Questions []catalog.Question `json:"questions"`
}

type SubmitEvaluationResponse struct {
	Success      bool   `json:"success"`
	EvaluationID string `json:"evaluationId"`
	ReportData   string `json:"reportData"`
}
