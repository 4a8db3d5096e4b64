package wire

import (
	"net/http"

	"beton-feedback/internal/adaptor"
	"beton-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	adminGate func(http.Handler) http.Handler,
	config *utils.Config,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/api/auth", authHandler.Authenticate)
	r.Get("/api/check-admin/{phone}", authHandler.CheckAdmin)

	// ==================== LEGACY ROUTES ====================
	// Open only when explicitly enabled, otherwise it needs an admin token
	if config.Admin.LegacyUpdate {
		r.Post("/api/update-admin", authHandler.UpdateAdmin)
	} else {
		r.With(adminGate).Post("/api/update-admin", authHandler.UpdateAdmin)
	}
}
