package service

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/post/model"
	"contenthub-backend/internal/shared"
)

// ServiceInterface is the post domain's application surface. Reads hand
// back repository results unchanged; a nil entity means not found.
// Writes enforce ownership before touching the store.
type ServiceInterface interface {
	// ListPosts lists published posts, newest first.
	ListPosts(ctx context.Context, page shared.Page) ([]model.PostWithAuthor, error)

	// ListPostsByCategory lists published posts in a category.
	ListPostsByCategory(ctx context.Context, category string, page shared.Page) ([]model.PostWithAuthor, error)

	// GetPost fetches a post by id, published or not.
	GetPost(ctx context.Context, id uuid.UUID) (*model.PostWithAuthor, error)

	// ListPostsByAuthor lists an author's posts including drafts.
	ListPostsByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.PostWithAuthor, error)

	// SearchPosts searches published posts by substring.
	SearchPosts(ctx context.Context, query string, page shared.Page) ([]model.PostWithAuthor, error)

	// CreatePost creates a post owned by the acting user.
	CreatePost(ctx context.Context, actor shared.Actor, req model.CreatePostRequest) (*model.Post, error)

	// UpdatePost patches a post the actor owns or administers.
	UpdatePost(ctx context.Context, actor shared.Actor, id uuid.UUID, req model.UpdatePostRequest) (*model.Post, error)

	// DeletePost removes a post the actor owns or administers.
	DeletePost(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error)
}
