package service

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/comment/model"
	"contenthub-backend/internal/shared"
)

// ServiceInterface covers comment reads and writes. The parent
// exclusivity policy is applied on create; ownership on update and
// delete.
type ServiceInterface interface {
	ListCommentsByPost(ctx context.Context, postID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error)
	ListCommentsByVideo(ctx context.Context, videoID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error)

	CreateComment(ctx context.Context, actor shared.Actor, req model.CreateCommentRequest) (*model.Comment, error)
	UpdateComment(ctx context.Context, actor shared.Actor, id uuid.UUID, req model.UpdateCommentRequest) (*model.Comment, error)
	DeleteComment(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error)
}
