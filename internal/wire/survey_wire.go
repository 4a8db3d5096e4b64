package wire

import (
	"beton-feedback/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireSurvey(r chi.Router, surveyHandler *adaptor.SurveyHandler) {
	r.Get("/api/products", surveyHandler.GetProducts)
	r.Get("/api/questions", surveyHandler.GetQuestions)
	r.Post("/api/evaluate", surveyHandler.SubmitEvaluation)
}
