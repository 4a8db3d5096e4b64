package adaptor

import (
	"encoding/json"
	"net/http"

	"beton-feedback/internal/usecase"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Survey     *SurveyHandler
	Evaluation *EvaluationHandler
	User       *UserHandler
	Product    *ProductHandler
	Admin      *AdminHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Survey:     NewSurveyHandler(service.Survey, log),
		Evaluation: NewEvaluationHandler(service.Evaluation, log),
		User:       NewUserHandler(service.User, log),
		Product:    NewProductHandler(service.Product, log),
		Admin:      NewAdminHandler(service.Admin, log),
	}
}

// decodeAndValidate reads a JSON body into dst and runs struct validation.
// On failure it writes the 400 response and returns false.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any, requiredMessage string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, requiredMessage, validationErrors)
		return false
	}

	return true
}

// handleServiceError maps service errors to responses and logs them by severity
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	appErr := utils.AsAppError(err)

	switch appErr.Kind {
	case utils.KindInternal:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
	case utils.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
	case utils.KindValidation, utils.KindConflict:
		log.Warn(operation+" failed - invalid input", zap.Error(err))
	default:
		log.Warn(operation+" failed - "+appErr.Kind.String(), zap.Error(err))
	}

	utils.ResponseAppError(w, appErr)
}
