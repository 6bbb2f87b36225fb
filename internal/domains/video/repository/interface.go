package repository

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/video/model"
	"contenthub-backend/internal/shared"
)

// VideoRepository is the storage port for videos. Reads return the
// author-joined view. A miss is (nil, nil); store failures are wrapped
// and propagated as-is.
type VideoRepository interface {
	// List returns published videos, newest first.
	List(ctx context.Context, page shared.Page) ([]model.VideoWithAuthor, error)

	// ListByCategory returns published videos in a category, newest first.
	ListByCategory(ctx context.Context, category string, page shared.Page) ([]model.VideoWithAuthor, error)

	// Get fetches a single video by id. No publish gate: direct links
	// double as draft previews.
	Get(ctx context.Context, id uuid.UUID) (*model.VideoWithAuthor, error)

	// ListByAuthor returns all of an author's videos, drafts included.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.VideoWithAuthor, error)

	// Search matches the query case-insensitively against title and
	// description of published videos. Recency order, no ranking.
	Search(ctx context.Context, query string, page shared.Page) ([]model.VideoWithAuthor, error)

	// Create inserts a video and returns the stored row.
	Create(ctx context.Context, params model.CreateVideoParams) (*model.Video, error)

	// Update applies a partial patch and returns the updated row, or
	// (nil, nil) when the id does not exist.
	Update(ctx context.Context, id uuid.UUID, params model.UpdateVideoParams) (*model.Video, error)

	// Delete removes a video, reporting whether a row was deleted.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
