package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/comment/model"
	"contenthub-backend/internal/domains/comment/repository"
	"contenthub-backend/internal/shared"
)

type commentService struct {
	commentRepo  repository.CommentRepository
	parentPolicy model.ParentPolicy
}

func NewCommentService(commentRepo repository.CommentRepository, parentPolicy model.ParentPolicy) ServiceInterface {
	return &commentService{
		commentRepo:  commentRepo,
		parentPolicy: parentPolicy,
	}
}

func (s *commentService) ListCommentsByPost(ctx context.Context, postID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error) {
	return s.commentRepo.ListByPost(ctx, postID, page)
}

func (s *commentService) ListCommentsByVideo(ctx context.Context, videoID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error) {
	return s.commentRepo.ListByVideo(ctx, videoID, page)
}

func (s *commentService) CreateComment(ctx context.Context, actor shared.Actor, req model.CreateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	parent, err := model.ParentFromIDs(req.PostID, req.VideoID, s.parentPolicy)
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.Create(ctx, model.CreateCommentParams{
		Content:  req.Content,
		AuthorID: actor.ID,
		Parent:   parent,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create comment: %w", err)
	}

	return comment, nil
}

func (s *commentService) UpdateComment(ctx context.Context, actor shared.Actor, id uuid.UUID, req model.UpdateCommentRequest) (*model.Comment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if !actor.CanManage(existing.AuthorID) {
		return nil, model.ErrForbidden
	}

	return s.commentRepo.Update(ctx, id, model.UpdateCommentParams{Content: req.Content})
}

func (s *commentService) DeleteComment(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error) {
	existing, err := s.commentRepo.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if !actor.CanManage(existing.AuthorID) {
		return false, model.ErrForbidden
	}

	return s.commentRepo.Delete(ctx, id)
}
