package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"beton-feedback/internal/audit"
	"beton-feedback/internal/data/entity"
	"beton-feedback/internal/data/repository"
	"beton-feedback/internal/dto/request"
	"beton-feedback/internal/dto/response"
	"beton-feedback/internal/notify"
	"beton-feedback/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	msgNoAdminToken       = "No admin token provided"
	msgInvalidAdminCreds  = "Invalid admin credentials"
	msgUserNotFound       = "User not found"
	msgUserCreated        = "User created successfully"
	msgUserLoggedIn       = "User logged in successfully"
	msgAuthFieldsRequired = "Username and phone are required"
)

type AuthService interface {
	Authenticate(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error)
	CheckAdmin(ctx context.Context, phone string) (*response.CheckAdminResponse, error)
	UpdateAdminStatus(ctx context.Context, req *request.UpdateAdminRequest) (*response.UserDetailResponse, error)
	// AuthenticateAdmin implements the phone-as-token admin gate.
	AuthenticateAdmin(ctx context.Context, token string) (*entity.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	state    *State
	log      *zap.Logger
}

func NewAuthService(userRepo repository.UserRepository, state *State, log *zap.Logger) AuthService {
	return &authService{
		userRepo: userRepo,
		state:    state,
		log:      log.With(zap.String("service", "auth")),
	}
}

func (s *authService) Authenticate(ctx context.Context, req *request.AuthRequest) (*response.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	phone := utils.NormalizePhone(req.Phone)
	if username == "" || phone == "" {
		return nil, utils.NewValidationError(msgAuthFieldsRequired, nil)
	}

	now := time.Now()
	user, created, err := s.userRepo.FindOrCreate(ctx, &entity.User{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Username: username,
		Phone:    phone,
	})
	if err != nil {
		return nil, utils.NewInternalError("Database error during authentication", err)
	}

	s.log.Info("User authenticated",
		zap.String("user_id", user.ID.String()),
		zap.Bool("created", created),
	)

	message := msgUserLoggedIn
	if created {
		message = msgUserCreated
	}

	return &response.AuthResponse{
		Success: true,
		UserID:  user.ID.String(),
		Message: message,
	}, nil
}

func (s *authService) CheckAdmin(ctx context.Context, phone string) (*response.CheckAdminResponse, error) {
	normalized := utils.NormalizePhone(phone)
	if normalized == "" {
		return &response.CheckAdminResponse{Success: false, Error: msgUserNotFound}, nil
	}

	user, err := s.userRepo.FindByPhone(ctx, normalized)
	if err != nil {
		return nil, utils.NewInternalError("Failed to check admin status", err)
	}
	if user == nil {
		return &response.CheckAdminResponse{Success: false, Error: msgUserNotFound}, nil
	}

	return &response.CheckAdminResponse{
		Success:  true,
		IsAdmin:  user.IsAdmin,
		UserID:   user.ID.String(),
		Username: user.Username,
	}, nil
}

func (s *authService) UpdateAdminStatus(ctx context.Context, req *request.UpdateAdminRequest) (*response.UserDetailResponse, error) {
	phone := utils.NormalizePhone(req.Phone)
	if phone == "" {
		return nil, utils.NewValidationError("Phone number is required", nil)
	}
	if req.IsAdmin == nil {
		return nil, utils.NewValidationError("isAdmin is required", map[string]string{"isAdmin": "This field is required"})
	}

	user, err := s.userRepo.FindByPhone(ctx, phone)
	if err != nil {
		return nil, utils.NewInternalError("Failed to update admin status", err)
	}
	if user == nil {
		return nil, utils.NewNotFoundError(msgUserNotFound)
	}

	return setAdminStatus(ctx, s.userRepo, s.state, s.log, user, *req.IsAdmin)
}

func (s *authService) AuthenticateAdmin(ctx context.Context, token string) (*entity.User, error) {
	if strings.TrimSpace(token) == "" {
		return nil, utils.NewUnauthorizedError(msgNoAdminToken)
	}

	phone := utils.NormalizePhone(token)
	if phone == "" {
		return nil, utils.NewForbiddenError(msgInvalidAdminCreds)
	}

	admin, err := s.userRepo.FindAdminByPhone(ctx, phone)
	if err != nil {
		return nil, utils.NewInternalError("Internal server error during admin check", err)
	}
	if admin == nil {
		return nil, utils.NewForbiddenError(msgInvalidAdminCreds)
	}

	return admin, nil
}

// setAdminStatus persists the flag, then audits and announces the change.
func setAdminStatus(ctx context.Context, userRepo repository.UserRepository, state *State, log *zap.Logger, user *entity.User, isAdmin bool) (*response.UserDetailResponse, error) {
	previous := user.IsAdmin
	user.IsAdmin = isAdmin
	user.UpdatedAt = time.Now()

	if err := userRepo.Update(ctx, user); err != nil {
		return nil, utils.NewInternalError("Failed to update admin status", err)
	}

	recordAction(ctx, state.Audit, log, audit.ActionUpdateAdminStatus, map[string]any{
		"userId":   user.ID.String(),
		"username": user.Username,
		"phone":    user.Phone,
		"previous": previous,
		"isAdmin":  isAdmin,
	})
	state.Events.Publish(notify.EventAdminStatusUpdated, map[string]any{
		"userId":  user.ID.String(),
		"isAdmin": isAdmin,
	})

	log.Info("Admin status updated",
		zap.String("user_id", user.ID.String()),
		zap.Bool("is_admin", isAdmin),
	)

	userResp := response.UserToResponse(user)
	return &response.UserDetailResponse{
		Success: true,
		Message: fmt.Sprintf("Admin status updated for user %s", user.Username),
		User:    &userResp,
	}, nil
}
