package repository

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/comment/model"
	"contenthub-backend/internal/shared"
)

// CommentRepository is the storage port for comments. Listings are
// author-joined and newest first; comments carry no publish gate. A
// miss is (nil, nil); store failures are wrapped and propagated.
type CommentRepository interface {
	// ListByPost returns comments on a post.
	ListByPost(ctx context.Context, postID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error)

	// ListByVideo returns comments on a video.
	ListByVideo(ctx context.Context, videoID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error)

	// Get fetches a single comment by id.
	Get(ctx context.Context, id uuid.UUID) (*model.CommentWithAuthor, error)

	// Create inserts a comment and returns the stored row. The parent
	// must be a constructed CommentParent; exclusivity was already
	// settled upstream.
	Create(ctx context.Context, params model.CreateCommentParams) (*model.Comment, error)

	// Update patches the content and returns the updated row, or
	// (nil, nil) when the id does not exist.
	Update(ctx context.Context, id uuid.UUID, params model.UpdateCommentParams) (*model.Comment, error)

	// Delete removes a comment, reporting whether a row was deleted.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
