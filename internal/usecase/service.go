package usecase

import (
	"context"

	"beton-feedback/internal/audit"
	"beton-feedback/internal/catalog"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/notify"
	"beton-feedback/internal/report"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

// State is the process-wide in-memory state shared by services.
type State struct {
	Audit    *audit.Log
	Products *catalog.Products
	Events   notify.Publisher
	Reports  *report.Renderer
}

type Service struct {
	Auth       AuthService
	Survey     SurveyService
	Evaluation EvaluationService
	User       UserService
	Product    ProductService
	Admin      AdminService
}

func NewService(repo *repository.Repository, state *State, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:       NewAuthService(repo.User, state, log),
		Survey:     NewSurveyService(repo, state, log),
		Evaluation: NewEvaluationService(repo.Evaluation, state, log),
		User:       NewUserService(repo.User, state, log),
		Product:    NewProductService(state, log),
		Admin:      NewAdminService(repo, state, log),
	}
}

// recordAction stamps an audit entry with the admin resolved by the admin gate.
// Call only after the mutation has been applied.
func recordAction(ctx context.Context, journal *audit.Log, log *zap.Logger, action string, details map[string]any) {
	adminPhone, _ := utils.GetAdminPhoneFromContext(ctx)
	journal.Record(action, details, adminPhone)

	fields := []zap.Field{zap.String("action", action)}
	if adminID, ok := utils.GetUserIDFromContext(ctx); ok {
		fields = append(fields, zap.String("admin_id", adminID.String()))
	}
	if adminName, ok := utils.GetUsernameFromContext(ctx); ok {
		fields = append(fields, zap.String("admin_username", adminName))
	}
	log.Info("Admin action recorded", fields...)
}
