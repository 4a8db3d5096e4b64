package wire

import (
	"net/http"
	"os"
	"time"

	"beton-feedback/internal/adaptor"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/notify"
	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/middleware"
	"beton-feedback/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router  *chi.Mux
	Service *usecase.Service
}

// Wiring builds services, handlers and the router around the shared state
func Wiring(repo *repository.Repository, state *usecase.State, hub *notify.Hub, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, state, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, hub, config, logger)

	return &App{
		Router:  router,
		Service: service,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	service *usecase.Service,
	hub *notify.Hub,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS(config.Admin.TokenHeader))

	adminGate := middleware.Admin(service.Auth, config.Admin.TokenHeader, logger)

	wireAuth(r, handler.Auth, adminGate, config)
	wireSurvey(r, handler.Survey)
	wireAdmin(r, handler, hub, adminGate)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseSuccess(w, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	wireStatic(r, config.App.StaticDir, logger)

	r.NotFound(routeNotFound)
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	return r
}

// wireStatic serves the browser UI when the directory exists
func wireStatic(r chi.Router, dir string, logger *zap.Logger) {
	if dir == "" {
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Info("Static directory not found, UI disabled", zap.String("dir", dir))
		return
	}

	// unknown API paths must not fall through to the file server
	r.HandleFunc("/api/*", routeNotFound)

	fs := http.FileServer(http.Dir(dir))
	r.Get("/", fs.ServeHTTP)
	r.Get("/*", fs.ServeHTTP)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	utils.ResponseNotFound(w, "Route not found")
}
