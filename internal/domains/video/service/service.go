package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/video/model"
	"contenthub-backend/internal/domains/video/repository"
	"contenthub-backend/internal/shared"
)

type videoService struct {
	videoRepo repository.VideoRepository
}

func NewVideoService(videoRepo repository.VideoRepository) ServiceInterface {
	return &videoService{videoRepo: videoRepo}
}

func (s *videoService) ListVideos(ctx context.Context, page shared.Page) ([]model.VideoWithAuthor, error) {
	return s.videoRepo.List(ctx, page)
}

func (s *videoService) ListVideosByCategory(ctx context.Context, category string, page shared.Page) ([]model.VideoWithAuthor, error) {
	return s.videoRepo.ListByCategory(ctx, category, page)
}

func (s *videoService) GetVideo(ctx context.Context, id uuid.UUID) (*model.VideoWithAuthor, error) {
	return s.videoRepo.Get(ctx, id)
}

func (s *videoService) ListVideosByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.VideoWithAuthor, error) {
	return s.videoRepo.ListByAuthor(ctx, authorID, page)
}

func (s *videoService) SearchVideos(ctx context.Context, query string, page shared.Page) ([]model.VideoWithAuthor, error) {
	return s.videoRepo.Search(ctx, query, page)
}

func (s *videoService) CreateVideo(ctx context.Context, actor shared.Actor, req model.CreateVideoRequest) (*model.Video, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	video, err := s.videoRepo.Create(ctx, model.CreateVideoParams{
		Title:       req.Title,
		Description: req.Description,
		VideoURL:    req.VideoURL,
		Thumbnail:   req.Thumbnail,
		Category:    req.Category,
		Tags:        req.Tags,
		Duration:    req.Duration,
		AuthorID:    actor.ID,
		Published:   req.Published,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create video: %w", err)
	}

	return video, nil
}

func (s *videoService) UpdateVideo(ctx context.Context, actor shared.Actor, id uuid.UUID, req model.UpdateVideoRequest) (*model.Video, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.videoRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	if !actor.CanManage(existing.AuthorID) {
		return nil, model.ErrForbidden
	}

	return s.videoRepo.Update(ctx, id, req.Params())
}

func (s *videoService) DeleteVideo(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error) {
	existing, err := s.videoRepo.Get(ctx, id)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, nil
	}

	if !actor.CanManage(existing.AuthorID) {
		return false, model.ErrForbidden
	}

	return s.videoRepo.Delete(ctx, id)
}
