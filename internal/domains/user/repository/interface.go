package repository

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/user/model"
)

// UserRepository is the data access contract for users. A miss on Get is
// reported as (nil, nil): absence is an expected outcome, not a failure.
type UserRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	Upsert(ctx context.Context, params model.UpsertUserParams) (*model.User, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
