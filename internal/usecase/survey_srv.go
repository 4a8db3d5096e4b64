package usecase

import (
	"context"
	"strings"
	"time"

	"beton-feedback/internal/catalog"
	"beton-feedback/internal/data/entity"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/dto/response"
	"beton-feedback/internal/report"
	"beton-feedback/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SurveyService interface {
	GetProducts(ctx context.Context) *response.ProductsResponse
	GetQuestions(ctx context.Context) *response.QuestionsResponse
	SubmitEvaluation(ctx context.Context, req *request.SubmitEvaluationRequest) (*response.SubmitEvaluationResponse, error)
}

type surveyService struct {
	repo  *repository.Repository
	state *State
	log   *zap.Logger
}

func NewSurveyService(repo *repository.Repository, state *State, log *zap.Logger) SurveyService {
	return &surveyService{
		repo:  repo,
		state: state,
		log:   log.With(zap.String("service", "survey")),
	}
}

func (s *surveyService) GetProducts(ctx context.Context) *response.ProductsResponse {
	return &response.ProductsResponse{
		Success:  true,
		Products: s.state.Products.List(),
	}
}

func (s *surveyService) GetQuestions(ctx context.Context) *response.QuestionsResponse {
	return &response.QuestionsResponse{
		Success:   true,
		Questions: catalog.Questions(),
	}
}

func (s *surveyService) SubmitEvaluation(ctx context.Context, req *request.SubmitEvaluationRequest) (*response.SubmitEvaluationResponse, error) {
	productName := strings.TrimSpace(req.ProductName)
	if productName == "" || req.Responses == nil || req.OverallRating == 0 {
		return nil, utils.NewValidationError("All fields are required", nil)
	}

	rating := int(req.OverallRating)
	if rating < 1 || rating > 5 {
		return nil, utils.NewValidationError("overallRating must be between 1 and 5", nil)
	}

	// An unparseable id cannot belong to any user
	userID, ok := utils.ParseUUID(req.UserID)
	if !ok {
		return nil, utils.NewNotFoundError(msgUserNotFound)
	}

	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.NewInternalError("Failed to save evaluation", err)
	}
	if user == nil {
		s.log.Warn("Evaluation for unknown user", zap.String("user_id", req.UserID))
		return nil, utils.NewNotFoundError(msgUserNotFound)
	}

	evaluation := &entity.Evaluation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:        user.ID,
		ProductName:   productName,
		Responses:     req.Responses,
		OverallRating: rating,
	}

	if err := s.repo.Evaluation.Create(ctx, evaluation); err != nil {
		return nil, utils.NewInternalError("Failed to save evaluation", err)
	}

	s.log.Info("Evaluation submitted",
		zap.String("evaluation_id", evaluation.ID.String()),
		zap.String("user_id", user.ID.String()),
		zap.String("product", productName),
		zap.Int("rating", rating),
	)

	return &response.SubmitEvaluationResponse{
		Success:      true,
		EvaluationID: evaluation.ID.String(),
		ReportData:   s.state.Reports.Render(reportDataFor(user.Username, user.Phone, evaluation)),
	}, nil
}

// reportDataFor builds renderer input from stored fields only, so a preview
// and a later download of the same evaluation render identically.
func reportDataFor(username, phone string, eval *entity.Evaluation) report.Data {
	return report.Data{
		User: report.User{
			Username: username,
			Phone:    phone,
		},
		Product:       eval.ProductName,
		Evaluation:    eval.Responses,
		OverallRating: eval.OverallRating,
		Date:          eval.CreatedAt,
	}
}
