package service

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/user/model"
	"contenthub-backend/internal/shared"
)

type ServiceInterface interface {
	// GetUser fetches a user by id; nil means not found.
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)

	// UpsertUser creates or merges a user record. Used by the auth
	// exchange on every sign-in.
	UpsertUser(ctx context.Context, params model.UpsertUserParams) (*model.User, error)

	// DeleteUser removes a user the actor may manage (self or admin).
	// Posts, videos and comments go with it via the schema cascades.
	DeleteUser(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error)
}
