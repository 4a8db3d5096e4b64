package repository

import (
	"context"
	"errors"
	"fmt"

	"beton-feedback/internal/data/entity"
	"beton-feedback/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

// ErrDuplicatePhone is returned when a write would break the unique phone key
var ErrDuplicatePhone = errors.New("phone already registered")

const uniqueViolation = "23505"

type UserRepository interface {
	// FindOrCreate returns the user owning user.Phone, inserting user when absent.
	FindOrCreate(ctx context.Context, user *entity.User) (*entity.User, bool, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindAdminByPhone(ctx context.Context, phone string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	CountAdmins(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete removes the user together with its evaluations and reports how many evaluations went with it.
	Delete(ctx context.Context, id uuid.UUID) (int64, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

const userColumns = `id, username, phone, is_admin, created_at, updated_at`

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Phone,
		&user.IsAdmin,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ur *userRepository) FindOrCreate(ctx context.Context, user *entity.User) (*entity.User, bool, error) {
	query := `
		INSERT INTO users (id, username, phone, is_admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (phone) DO NOTHING
		RETURNING ` + userColumns

	created, err := scanUser(ur.db.QueryRow(ctx, query,
		user.ID,
		user.Username,
		user.Phone,
		user.IsAdmin,
		user.CreatedAt,
		user.UpdatedAt,
	))
	if err == nil {
		return created, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		return nil, false, fmt.Errorf("create user: %w", err)
	}

	// Phone already taken, the existing row wins
	existing, err := ur.FindByPhone(ctx, user.Phone)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, fmt.Errorf("user with phone vanished after conflict")
	}

	return existing, false, nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1`

	user, err := scanUser(ur.db.QueryRow(ctx, query, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by phone", zap.Error(err))
		return nil, fmt.Errorf("find user by phone: %w", err)
	}

	return user, nil
}

func (ur *userRepository) FindAdminByPhone(ctx context.Context, phone string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE phone = $1 AND is_admin = TRUE`

	user, err := scanUser(ur.db.QueryRow(ctx, query, phone))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find admin by phone", zap.Error(err))
		return nil, fmt.Errorf("find admin by phone: %w", err)
	}

	return user, nil
}

// FindAll lists users, newest first
func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`

	rows, err := ur.db.Query(ctx, query)
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer rows.Close()

	var users []*entity.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			ur.log.Error("Failed to scan user row", zap.Error(err))
			return nil, fmt.Errorf("scan user row: %w", err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		ur.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate users rows: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	var count int64
	if err := ur.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&count); err != nil {
		ur.log.Error("Database error counting users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}
	return count, nil
}

func (ur *userRepository) CountAdmins(ctx context.Context) (int64, error) {
	var count int64
	if err := ur.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE is_admin = TRUE`).Scan(&count); err != nil {
		ur.log.Error("Database error counting admins", zap.Error(err))
		return 0, fmt.Errorf("count admins: %w", err)
	}
	return count, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users
		SET username = $2, phone = $3, is_admin = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := ur.db.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Phone,
		user.IsAdmin,
		user.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrDuplicatePhone
		}
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID.String()),
		)
		return fmt.Errorf("update user %s: %w", user.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("user %s not found", user.ID.String())
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	tx, err := ur.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("begin delete user %s: %w", id.String(), err)
	}
	defer tx.Rollback(ctx)

	evalResult, err := tx.Exec(ctx, `DELETE FROM evaluations WHERE user_id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user evaluations",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return 0, fmt.Errorf("delete evaluations of user %s: %w", id.String(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id.String()),
		)
		return 0, fmt.Errorf("delete user %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return 0, fmt.Errorf("user %s not found", id.String())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("commit delete user %s: %w", id.String(), err)
	}

	ur.log.Info("User deleted",
		zap.String("id", id.String()),
		zap.Int64("evaluations", evalResult.RowsAffected()),
	)
	return evalResult.RowsAffected(), nil
}
