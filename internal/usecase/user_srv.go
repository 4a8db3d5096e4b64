package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"beton-feedback/internal/audit"
	"beton-feedback/internal/data/entity"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/dto/response"
	"beton-feedback/internal/notify"
	"beton-feedback/pkg/utils"

	"go.uber.org/zap"
)

type UserService interface {
	GetAllUsers(ctx context.Context) (*response.UsersResponse, error)
	GetUser(ctx context.Context, userID string) (*response.UserDetailResponse, error)
	UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserDetailResponse, error)
	SetAdmin(ctx context.Context, userID string, isAdmin bool) (*response.UserDetailResponse, error)
	DeleteUser(ctx context.Context, userID string) error
}

type userService struct {
	userRepo repository.UserRepository
	state    *State
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, state *State, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		state:    state,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetAllUsers(ctx context.Context) (*response.UsersResponse, error) {
	users, err := us.userRepo.FindAll(ctx)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch users", err)
	}

	items := make([]response.UserResponse, len(users))
	for i, user := range users {
		items[i] = response.UserToResponse(user)
	}

	us.log.Debug("Users retrieved", zap.Int("count", len(items)))

	return &response.UsersResponse{Success: true, Users: items}, nil
}

func (us *userService) GetUser(ctx context.Context, userID string) (*response.UserDetailResponse, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	userResp := response.UserToResponse(user)
	return &response.UserDetailResponse{Success: true, User: &userResp}, nil
}

func (us *userService) UpdateUser(ctx context.Context, userID string, req *request.UpdateUserRequest) (*response.UserDetailResponse, error) {
	if req.Username == nil && req.Phone == nil {
		return nil, utils.NewValidationError("Nothing to update", nil)
	}

	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	before := map[string]any{"username": user.Username, "phone": user.Phone}

	if req.Username != nil {
		username := strings.TrimSpace(*req.Username)
		if username == "" {
			return nil, utils.NewValidationError("Username cannot be empty", map[string]string{"username": "This field is required"})
		}
		user.Username = username
	}
	if req.Phone != nil {
		phone := utils.NormalizePhone(*req.Phone)
		if phone == "" {
			return nil, utils.NewValidationError("Phone cannot be empty", map[string]string{"phone": "This field is required"})
		}
		user.Phone = phone
	}
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicatePhone) {
			return nil, utils.NewConflictError("Phone number already in use")
		}
		return nil, utils.NewInternalError("Failed to update user", err)
	}

	recordAction(ctx, us.state.Audit, us.log, audit.ActionUpdateUser, map[string]any{
		"userId": user.ID.String(),
		"before": before,
		"after":  map[string]any{"username": user.Username, "phone": user.Phone},
	})
	us.state.Events.Publish(notify.EventUserUpdated, map[string]any{
		"userId":   user.ID.String(),
		"username": user.Username,
		"phone":    user.Phone,
	})

	us.log.Info("User updated", zap.String("user_id", user.ID.String()))

	userResp := response.UserToResponse(user)
	return &response.UserDetailResponse{
		Success: true,
		Message: "User updated successfully",
		User:    &userResp,
	}, nil
}

func (us *userService) SetAdmin(ctx context.Context, userID string, isAdmin bool) (*response.UserDetailResponse, error) {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return setAdminStatus(ctx, us.userRepo, us.state, us.log, user, isAdmin)
}

func (us *userService) DeleteUser(ctx context.Context, userID string) error {
	user, err := us.findUser(ctx, userID)
	if err != nil {
		return err
	}

	removed, err := us.userRepo.Delete(ctx, user.ID)
	if err != nil {
		return utils.NewInternalError("Failed to delete user", err)
	}

	recordAction(ctx, us.state.Audit, us.log, audit.ActionDeleteUser, map[string]any{
		"userId":             user.ID.String(),
		"username":           user.Username,
		"phone":              user.Phone,
		"deletedEvaluations": removed,
	})
	us.state.Events.Publish(notify.EventUserDeleted, map[string]any{
		"userId": user.ID.String(),
	})

	us.log.Info("User deleted",
		zap.String("user_id", user.ID.String()),
		zap.Int64("evaluations", removed),
	)
	return nil
}

func (us *userService) findUser(ctx context.Context, userID string) (*entity.User, error) {
	id, ok := utils.ParseUUID(userID)
	if !ok {
		return nil, utils.NewNotFoundError(msgUserNotFound)
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, utils.NewInternalError("Failed to fetch user", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError(msgUserNotFound)
	}

	return user, nil
}
