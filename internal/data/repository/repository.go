package repository

import (
	"beton-feedback/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Evaluation EvaluationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Evaluation: NewEvaluationRepository(db, log),
	}
}
