package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contenthub-backend/internal/domains/post/model"
	usermodel "contenthub-backend/internal/domains/user/model"
)

func strPtr(s string) *string { return &s }

func TestBuildPostUpdateSet(t *testing.T) {
	t.Run("empty patch still stamps updated_at", func(t *testing.T) {
		set, args := buildPostUpdateSet(model.UpdatePostParams{})

		assert.Equal(t, "updated_at = $1", set)
		require.Len(t, args, 1)
		assert.IsType(t, time.Time{}, args[0])
	})

	t.Run("single field", func(t *testing.T) {
		set, args := buildPostUpdateSet(model.UpdatePostParams{Title: strPtr("new title")})

		assert.Equal(t, "title = $1, updated_at = $2", set)
		require.Len(t, args, 2)
		assert.Equal(t, "new title", args[0])
	})

	t.Run("placeholders stay aligned with args", func(t *testing.T) {
		published := true
		tags := []string{"go", "sql"}
		set, args := buildPostUpdateSet(model.UpdatePostParams{
			Title:     strPtr("t"),
			Content:   strPtr("c"),
			Tags:      &tags,
			Published: &published,
		})

		assert.Equal(t, "title = $1, content = $2, tags = $3, published = $4, updated_at = $5", set)
		assert.Len(t, args, 5)
		assert.Equal(t, true, args[3])
	})

	t.Run("nil fields are omitted", func(t *testing.T) {
		set, _ := buildPostUpdateSet(model.UpdatePostParams{Excerpt: strPtr("e")})

		assert.NotContains(t, set, "title")
		assert.NotContains(t, set, "content")
		assert.Contains(t, set, "excerpt = $1")
	})
}

func TestPostAuthorRowMapping(t *testing.T) {
	authorID := uuid.New()
	now := time.Now().UTC()
	role := usermodel.RoleAuthor

	base := model.Post{
		ID:        uuid.New(),
		Title:     "a post",
		Content:   "body",
		Category:  "tech",
		Tags:      []string{"go"},
		AuthorID:  authorID,
		Published: true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	t.Run("complete row maps to view", func(t *testing.T) {
		row := &postAuthorRow{
			post:            base,
			authorID:        &authorID,
			authorEmail:     strPtr("a@example.com"),
			authorName:      strPtr("Ann"),
			authorRole:      &role,
			authorCreatedAt: &now,
			authorUpdatedAt: &now,
		}

		got, err := row.toPostWithAuthor()
		require.NoError(t, err)
		assert.Equal(t, base, got.Post)
		assert.Equal(t, authorID, got.Author.ID)
		assert.Equal(t, usermodel.RoleAuthor, got.Author.Role)
	})

	t.Run("missing author side fails loudly", func(t *testing.T) {
		row := &postAuthorRow{post: base}

		_, err := row.toPostWithAuthor()
		require.Error(t, err)
		assert.ErrorIs(t, err, model.ErrAuthorMissing)
		// The offending row is identified in the message.
		assert.Contains(t, err.Error(), base.ID.String())
	})

	t.Run("nullable author fields may legitimately be nil", func(t *testing.T) {
		row := &postAuthorRow{
			post:            base,
			authorID:        &authorID,
			authorRole:      &role,
			authorCreatedAt: &now,
			authorUpdatedAt: &now,
		}

		got, err := row.toPostWithAuthor()
		require.NoError(t, err)
		assert.Nil(t, got.Author.Email)
		assert.Nil(t, got.Author.Name)
	})
}
