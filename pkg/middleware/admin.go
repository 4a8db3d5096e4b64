package middleware

import (
	"context"
	"net/http"

	"beton-feedback/internal/data/entity"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

// AdminAuthenticator resolves an admin token to the admin it belongs to.
// Implementations return AppErrors of kind Unauthorized, Forbidden or Internal.
type AdminAuthenticator interface {
	AuthenticateAdmin(ctx context.Context, token string) (*entity.User, error)
}

// Admin gates a route behind the admin token header
func Admin(auth AdminAuthenticator, header string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Header lookup is case-insensitive
			token := r.Header.Get(header)

			admin, err := auth.AuthenticateAdmin(r.Context(), token)
			if err != nil {
				appErr := utils.AsAppError(err)
				if appErr.Kind == utils.KindInternal {
					logger.Error("Admin check failed",
						zap.Error(err),
						zap.String("path", r.URL.Path))
					utils.ResponseInternalError(w, "Internal server error during admin check")
					return
				}

				logger.Warn("Admin check rejected",
					zap.String("reason", appErr.Message),
					zap.String("token", utils.MaskPhone(utils.NormalizePhone(token))),
					zap.String("path", r.URL.Path))
				utils.ResponseAppError(w, appErr)
				return
			}

			ctx := utils.SetAdminContext(r.Context(), admin.ID, admin.Username, admin.Phone)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
