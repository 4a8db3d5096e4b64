package wire

import (
	"net/http"

	"beton-feedback/internal/adaptor"
	"beton-feedback/internal/notify"

	"github.com/go-chi/chi/v5"
)

// wireAdmin mounts every /api/admin route behind the admin gate
func wireAdmin(
	r chi.Router,
	handler *adaptor.Handler,
	hub *notify.Hub,
	adminGate func(http.Handler) http.Handler,
) {
	r.With(adminGate).Route("/api/admin", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", handler.Product.GetProducts)
			r.Post("/", handler.Product.AddProduct)
			r.Put("/", handler.Product.RenameProduct)
			r.Delete("/", handler.Product.DeleteProduct)
		})

		r.Route("/evaluations", func(r chi.Router) {
			r.Get("/", handler.Evaluation.GetAllEvaluations)
			r.Delete("/{id}", handler.Evaluation.DeleteEvaluation)
			r.Get("/{id}/report", handler.Evaluation.DownloadReport)
		})

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handler.User.GetAllUsers)
			r.Get("/{id}", handler.User.GetUser)
			r.Put("/{id}", handler.User.UpdateUser)
			r.Put("/{id}/admin", handler.User.SetAdmin)
			r.Delete("/{id}", handler.User.DeleteUser)
		})

		r.Get("/statistics", handler.Admin.GetStatistics)
		r.Get("/export/evaluations", handler.Admin.ExportEvaluations)
		r.Get("/export/users", handler.Admin.ExportUsers)
		r.Get("/logs", handler.Admin.GetLogs)
		r.Get("/events", hub.ServeHTTP)
	})
}
