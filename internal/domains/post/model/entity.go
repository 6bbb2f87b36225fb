package model

import (
	"time"

	"github.com/google/uuid"

	usermodel "contenthub-backend/internal/domains/user/model"
)

// Post is a written article. Unpublished posts are hidden from the
// public list and search operations but stay reachable by direct id and
// through by-author listings.
type Post struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Excerpt   *string   `json:"excerpt"`
	Image     *string   `json:"image"`
	Category  string    `json:"category"`
	Tags      []string  `json:"tags"`
	AuthorID  uuid.UUID `json:"author_id"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostWithAuthor is the read view returned by every post query: the post
// plus its resolved author. Never persisted; assembled per query.
type PostWithAuthor struct {
	Post
	Author usermodel.User `json:"author"`
}

// CreatePostParams carries the writable columns of a new post. ID is
// optional; a zero value means the repository assigns one.
type CreatePostParams struct {
	ID        uuid.UUID
	Title     string
	Content   string
	Excerpt   *string
	Image     *string
	Category  string
	Tags      []string
	AuthorID  uuid.UUID
	Published bool
}

// UpdatePostParams is a partial patch: nil fields are left unchanged in
// storage. updated_at is refreshed regardless of what is supplied.
type UpdatePostParams struct {
	Title     *string
	Content   *string
	Excerpt   *string
	Image     *string
	Category  *string
	Tags      *[]string
	Published *bool
}

// IsEmpty reports whether the patch would change no columns.
func (p UpdatePostParams) IsEmpty() bool {
	return p.Title == nil && p.Content == nil && p.Excerpt == nil &&
		p.Image == nil && p.Category == nil && p.Tags == nil && p.Published == nil
}
