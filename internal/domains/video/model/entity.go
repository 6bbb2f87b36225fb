package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "contenthub-backend/internal/domains/user/model"
)

// Video metadata. The media itself lives behind VideoURL; this service
// only tracks the record. Publish semantics match posts: drafts are
// hidden from public lists and search, visible by id and by author.
type Video struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	VideoURL    string    `json:"video_url"`
	Thumbnail   *string   `json:"thumbnail"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	Duration    *string   `json:"duration"`
	AuthorID    uuid.UUID `json:"author_id"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// VideoWithAuthor is the read view for all video queries.
type VideoWithAuthor struct {
	Video
	Author usermodel.User `json:"author"`
}

type CreateVideoParams struct {
	ID          uuid.UUID
	Title       string
	Description *string
	VideoURL    string
	Thumbnail   *string
	Category    string
	Tags        []string
	Duration    *string
	AuthorID    uuid.UUID
	Published   bool
}

// UpdateVideoParams is a partial patch; nil fields are left alone.
type UpdateVideoParams struct {
	Title       *string
	Description *string
	VideoURL    *string
	Thumbnail   *string
	Category    *string
	Tags        *[]string
	Duration    *string
	Published   *bool
}

func (p UpdateVideoParams) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.VideoURL == nil &&
		p.Thumbnail == nil && p.Category == nil && p.Tags == nil &&
		p.Duration == nil && p.Published == nil
}
