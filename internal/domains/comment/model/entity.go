package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "contenthub-backend/internal/domains/user/model"
)

// Comment belongs to exactly one parent, a post or a video. The store
// keeps two nullable FK columns; CommentParent keeps application code
// from ever constructing the neither-or-both state.
type Comment struct {
	ID        uuid.UUID  `json:"id"`
	Content   string     `json:"content"`
	AuthorID  uuid.UUID  `json:"author_id"`
	PostID    *uuid.UUID `json:"post_id"`
	VideoID   *uuid.UUID `json:"video_id"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CommentWithAuthor is the read view for comment listings.
type CommentWithAuthor struct {
	Comment
	Author usermodel.User `json:"author"`
}

type CreateCommentParams struct {
	ID       uuid.UUID
	Content  string
	AuthorID uuid.UUID
	Parent   CommentParent
}

// UpdateCommentParams is the comment patch. Only content is mutable;
// a comment never moves between parents.
type UpdateCommentParams struct {
	Content *string
}
