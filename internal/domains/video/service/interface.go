package service

import (
	"context"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/video/model"
	"contenthub-backend/internal/shared"
)

// ServiceInterface mirrors the post service for videos: reads pass
// repository results through, writes enforce ownership first.
type ServiceInterface interface {
	ListVideos(ctx context.Context, page shared.Page) ([]model.VideoWithAuthor, error)
	ListVideosByCategory(ctx context.Context, category string, page shared.Page) ([]model.VideoWithAuthor, error)
	GetVideo(ctx context.Context, id uuid.UUID) (*model.VideoWithAuthor, error)
	ListVideosByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.VideoWithAuthor, error)
	SearchVideos(ctx context.Context, query string, page shared.Page) ([]model.VideoWithAuthor, error)

	CreateVideo(ctx context.Context, actor shared.Actor, req model.CreateVideoRequest) (*model.Video, error)
	UpdateVideo(ctx context.Context, actor shared.Actor, id uuid.UUID, req model.UpdateVideoRequest) (*model.Video, error)
	DeleteVideo(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error)
}
