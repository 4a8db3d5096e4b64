package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"beton-feedback/internal/data/entity"
	"beton-feedback/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EvaluationRepository interface {
	Create(ctx context.Context, evaluation *entity.Evaluation) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationWithUser, error)
	// FindAll joins user identity and sorts newest first
	FindAll(ctx context.Context) ([]*entity.EvaluationWithUser, error)
	CountAll(ctx context.Context) (int64, error)
	ProductStats(ctx context.Context) ([]entity.ProductStat, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type evaluationRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEvaluationRepository(db database.PgxIface, log *zap.Logger) EvaluationRepository {
	return &evaluationRepository{
		db:  db,
		log: log,
	}
}

const evaluationWithUserQuery = `
	SELECT e.id, e.user_id, e.product_name, e.responses, e.overall_rating, e.created_at,
	       u.username, u.phone
	FROM evaluations e
	JOIN users u ON u.id = e.user_id
`

func scanEvaluationWithUser(row pgx.Row) (*entity.EvaluationWithUser, error) {
	var (
		eval      entity.EvaluationWithUser
		responses []byte
	)

	err := row.Scan(
		&eval.ID,
		&eval.UserID,
		&eval.ProductName,
		&responses,
		&eval.OverallRating,
		&eval.CreatedAt,
		&eval.Username,
		&eval.Phone,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(responses, &eval.Responses); err != nil {
		return nil, fmt.Errorf("decode responses of evaluation %s: %w", eval.ID.String(), err)
	}

	return &eval, nil
}

func (er *evaluationRepository) Create(ctx context.Context, evaluation *entity.Evaluation) error {
	responses, err := json.Marshal(evaluation.Responses)
	if err != nil {
		return fmt.Errorf("encode responses: %w", err)
	}

	query := `
		INSERT INTO evaluations (id, user_id, product_name, responses, overall_rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = er.db.Exec(ctx, query,
		evaluation.ID,
		evaluation.UserID,
		evaluation.ProductName,
		responses,
		evaluation.OverallRating,
		evaluation.CreatedAt,
	)
	if err != nil {
		er.log.Error("Failed to create evaluation",
			zap.Error(err),
			zap.String("user_id", evaluation.UserID.String()),
			zap.String("product", evaluation.ProductName),
		)
		return fmt.Errorf("create evaluation for user %s: %w", evaluation.UserID.String(), err)
	}

	return nil
}

func (er *evaluationRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EvaluationWithUser, error) {
	query := evaluationWithUserQuery + ` WHERE e.id = $1`

	eval, err := scanEvaluationWithUser(er.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		er.log.Error("Failed to find evaluation by ID",
			zap.Error(err),
			zap.String("evaluation_id", id.String()),
		)
		return nil, fmt.Errorf("find evaluation by ID %s: %w", id.String(), err)
	}

	return eval, nil
}

func (er *evaluationRepository) FindAll(ctx context.Context) ([]*entity.EvaluationWithUser, error) {
	query := evaluationWithUserQuery + ` ORDER BY e.created_at DESC`

	rows, err := er.db.Query(ctx, query)
	if err != nil {
		er.log.Error("Failed to get all evaluations", zap.Error(err))
		return nil, fmt.Errorf("find all evaluations: %w", err)
	}
	defer rows.Close()

	var evaluations []*entity.EvaluationWithUser
	for rows.Next() {
		eval, err := scanEvaluationWithUser(rows)
		if err != nil {
			er.log.Error("Failed to scan evaluation row", zap.Error(err))
			return nil, fmt.Errorf("scan evaluation row: %w", err)
		}
		evaluations = append(evaluations, eval)
	}

	if err := rows.Err(); err != nil {
		er.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate evaluation rows: %w", err)
	}

	return evaluations, nil
}

func (er *evaluationRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := er.db.QueryRow(ctx, `SELECT COUNT(*) FROM evaluations`).Scan(&count); err != nil {
		er.log.Error("Database error counting evaluations", zap.Error(err))
		return 0, fmt.Errorf("count evaluations: %w", err)
	}
	return count, nil
}

// ProductStats aggregates submission count and mean rating per product
func (er *evaluationRepository) ProductStats(ctx context.Context) ([]entity.ProductStat, error) {
	query := `
		SELECT product_name, COUNT(*), COALESCE(AVG(overall_rating), 0)::float8
		FROM evaluations
		GROUP BY product_name
		ORDER BY COUNT(*) DESC, product_name
	`

	rows, err := er.db.Query(ctx, query)
	if err != nil {
		er.log.Error("Failed to aggregate product stats", zap.Error(err))
		return nil, fmt.Errorf("product stats: %w", err)
	}
	defer rows.Close()

	stats := []entity.ProductStat{}
	for rows.Next() {
		var stat entity.ProductStat
		if err := rows.Scan(&stat.ProductName, &stat.Count, &stat.AverageRating); err != nil {
			return nil, fmt.Errorf("scan product stat: %w", err)
		}
		stats = append(stats, stat)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product stats: %w", err)
	}

	return stats, nil
}

func (er *evaluationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := er.db.Exec(ctx, `DELETE FROM evaluations WHERE id = $1`, id)
	if err != nil {
		er.log.Error("Failed to delete evaluation",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return fmt.Errorf("delete evaluation %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("evaluation %s not found", id.String())
	}

	return nil
}
