package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/post/model"
	"contenthub-backend/internal/domains/post/repository"
	"contenthub-backend/internal/shared"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type postService struct {
	postRepo repository.PostRepository
}

func NewPostService(postRepo repository.PostRepository) ServiceInterface {
	return &postService{postRepo: postRepo}
}

// =====================================================
// READS
// =====================================================

func (s *postService) ListPosts(ctx context.Context, page shared.Page) ([]model.PostWithAuthor, error) {
	return s.postRepo.List(ctx, page)
}

func (s *postService) ListPostsByCategory(ctx context.Context, category string, page shared.Page) ([]model.PostWithAuthor, error) {
	return s.postRepo.ListByCategory(ctx, category, page)
}

func (s *postService) GetPost(ctx context.Context, id uuid.UUID) (*model.PostWithAuthor, error) {
	return s.postRepo.Get(ctx, id)
}

func (s *postService) ListPostsByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.PostWithAuthor, error) {
	return s.postRepo.ListByAuthor(ctx, authorID, page)
}

func (s *postService) SearchPosts(ctx context.Context, query string, page shared.Page) ([]model.PostWithAuthor, error) {
	return s.postRepo.Search(ctx, query, page)
}

// =====================================================
// WRITES
// =====================================================

func (s *postService) CreatePost(ctx context.Context, actor shared.Actor, req model.CreatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	post, err := s.postRepo.Create(ctx, model.CreatePostParams{
		Title:     req.Title,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		Image:     req.Image,
		Category:  req.Category,
		Tags:      req.Tags,
		AuthorID:  actor.ID,
		Published: req.Published,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	return post, nil
}

func (s *postService) UpdatePost(ctx context.Context, actor shared.Actor, id uuid.UUID, req model.UpdatePostRequest) (*model.Post, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.postRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if !actor.CanManage(existing.AuthorID) {
		return nil, model.ErrForbidden
	}

	// An empty patch still goes to the store: updated_at is stamped
	// on every update, field changes or not.
	return s.postRepo.Update(ctx, id, req.Params())
}

func (s *postService) DeletePost(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error) {
	existing, err := s.postRepo.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if !actor.CanManage(existing.AuthorID) {
		return false, model.ErrForbidden
	}

	return s.postRepo.Delete(ctx, id)
}
