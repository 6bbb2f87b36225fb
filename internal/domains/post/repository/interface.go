package repository

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/post/model"
	"contenthub-backend/internal/shared"
)

// PostRepository is the data access contract for posts. Every read
// returns the author-joined view. Misses are (nil, nil) / (false, nil):
// absence is an expected outcome, never a failure. Store errors
// propagate wrapped, untranslated, and without retry.
type PostRepository interface {
	// List returns published posts only, newest first.
	List(ctx context.Context, page shared.Page) ([]model.PostWithAuthor, error)

	// ListByCategory narrows List to an exact category match.
	ListByCategory(ctx context.Context, category string, page shared.Page) ([]model.PostWithAuthor, error)

	// Get bypasses the publish gate so authors can preview unpublished
	// posts by direct link.
	Get(ctx context.Context, id uuid.UUID) (*model.PostWithAuthor, error)

	// ListByAuthor returns all of an author's posts, published or not.
	ListByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.PostWithAuthor, error)

	// Search matches the query case-insensitively against title,
	// content, and excerpt of published posts. Recency order, no ranking.
	Search(ctx context.Context, query string, page shared.Page) ([]model.PostWithAuthor, error)

	Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error)
	Update(ctx context.Context, id uuid.UUID, params model.UpdatePostParams) (*model.Post, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
