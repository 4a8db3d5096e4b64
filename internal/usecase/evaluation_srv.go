package usecase

import (
	"context"

	"beton-feedback/internal/audit"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/dto/response"
	"beton-feedback/internal/notify"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

const msgEvaluationNotFound = "Evaluation not found"

type EvaluationService interface {
	GetAllEvaluations(ctx context.Context) (*response.EvaluationsResponse, error)
	DeleteEvaluation(ctx context.Context, evaluationID string) error
	GetReport(ctx context.Context, evaluationID string) (*response.Report, error)
}

type evaluationService struct {
	evalRepo repository.EvaluationRepository
	state    *State
	log      *zap.Logger
}

func NewEvaluationService(evalRepo repository.EvaluationRepository, state *State, log *zap.Logger) EvaluationService {
	return &evaluationService{
		evalRepo: evalRepo,
		state:    state,
		log:      log.With(zap.String("service", "evaluation")),
	}
}

func (s *evaluationService) GetAllEvaluations(ctx context.Context) (*response.EvaluationsResponse, error) {
	evaluations, err := s.evalRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch evaluations", err)
	}

	items := make([]response.EvaluationResponse, len(evaluations))
	for i, eval := range evaluations {
		items[i] = response.EvaluationToResponse(eval)
	}

	return &response.EvaluationsResponse{
		Success:     true,
		Evaluations: items,
	}, nil
}

func (s *evaluationService) DeleteEvaluation(ctx context.Context, evaluationID string) error {
	id, ok := utils.ParseUUID(evaluationID)
	if !ok {
		return utils.NewNotFoundError(msgEvaluationNotFound)
	}

	eval, err := s.evalRepo.FindByID(ctx, id)
	if err != nil {
		return utils.NewInternalError("Failed to delete evaluation", err)
	}
	if eval == nil {
		return utils.NewNotFoundError(msgEvaluationNotFound)
	}

	if err := s.evalRepo.Delete(ctx, id); err != nil {
		return utils.NewInternalError("Failed to delete evaluation", err)
	}

	recordAction(ctx, s.state.Audit, s.log, audit.ActionDeleteEvaluation, map[string]any{
		"evaluationId":  eval.ID.String(),
		"userId":        eval.UserID.String(),
		"username":      eval.Username,
		"productName":   eval.ProductName,
		"overallRating": eval.OverallRating,
	})
	s.state.Events.Publish(notify.EventEvaluationDeleted, map[string]any{
		"evaluationId": eval.ID.String(),
	})

	s.log.Info("Evaluation deleted", zap.String("evaluation_id", eval.ID.String()))
	return nil
}

func (s *evaluationService) GetReport(ctx context.Context, evaluationID string) (*response.Report, error) {
	id, ok := utils.ParseUUID(evaluationID)
	if !ok {
		return nil, utils.NewNotFoundError(msgEvaluationNotFound)
	}

	eval, err := s.evalRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to generate report", err)
	}
	if eval == nil {
		return nil, utils.NewNotFoundError(msgEvaluationNotFound)
	}

	text := s.state.Reports.Render(reportDataFor(eval.Username, eval.Phone, &eval.Evaluation))

	return &response.Report{
		Filename:    "evaluation-" + eval.ID.String() + ".txt",
		ContentType: "text/plain; charset=utf-8",
		Body:        []byte(text),
	}, nil
}
