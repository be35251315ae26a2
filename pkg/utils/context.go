package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	IdentityIDKey contextKey = "identity_id"
	RoleKey       contextKey = "role"
)

func SetIdentityContext(ctx context.Context, identityID uuid.UUID, role string) context.Context {
	ctx = context.WithValue(ctx, IdentityIDKey, identityID.String())
	return context.WithValue(ctx, RoleKey, role)
}

func GetIdentityIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	raw, ok := ctx.Value(IdentityIDKey).(string)
	if !ok {
		return uuid.Nil, false
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(RoleKey).(string)
	return role, ok
}
