package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey     contextKey = "user_id"
	UsernameKey   contextKey = "username"
	AdminPhoneKey contextKey = "admin_phone"
)

func GetUserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userIDVal := ctx.Value(UserIDKey)
	if userIDVal == nil {
		return uuid.Nil, false
	}

	userIDStr, ok := userIDVal.(string)
	if !ok {
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return uuid.Nil, false
	}

	return userID, true
}

// GetAdminPhoneFromContext returns the phone of the admin resolved by the admin gate
func GetAdminPhoneFromContext(ctx context.Context) (string, bool) {
	phoneVal := ctx.Value(AdminPhoneKey)
	if phoneVal == nil {
		return "", false
	}

	phone, ok := phoneVal.(string)
	return phone, ok
}

func GetUsernameFromContext(ctx context.Context) (string, bool) {
	nameVal := ctx.Value(UsernameKey)
	if nameVal == nil {
		return "", false
	}

	name, ok := nameVal.(string)
	return name, ok
}

// SetAdminContext attaches the resolved admin identity
func SetAdminContext(ctx context.Context, userID uuid.UUID, username, phone string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID.String())
	ctx = context.WithValue(ctx, UsernameKey, username)
	ctx = context.WithValue(ctx, AdminPhoneKey, phone)
	return ctx
}
