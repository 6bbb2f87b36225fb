package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contenthub-backend/internal/domains/post/model"
	"contenthub-backend/internal/shared"
)

// stubPostRepo records calls and plays back canned results.
type stubPostRepo struct {
	getResult    *model.PostWithAuthor
	created      *model.CreatePostParams
	updated      *model.UpdatePostParams
	deleteCalled bool
}

func (s *stubPostRepo) List(ctx context.Context, page shared.Page) ([]model.PostWithAuthor, error) {
	return nil, nil
}
func (s *stubPostRepo) ListByCategory(ctx context.Context, category string, page shared.Page) ([]model.PostWithAuthor, error) {
	return nil, nil
}
func (s *stubPostRepo) Get(ctx context.Context, id uuid.UUID) (*model.PostWithAuthor, error) {
	return s.getResult, nil
}
func (s *stubPostRepo) ListByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.PostWithAuthor, error) {
	return nil, nil
}
func (s *stubPostRepo) Search(ctx context.Context, query string, page shared.Page) ([]model.PostWithAuthor, error) {
	return nil, nil
}
func (s *stubPostRepo) Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error) {
	s.created = &params
	return &model.Post{ID: uuid.New(), Title: params.Title, AuthorID: params.AuthorID}, nil
}
func (s *stubPostRepo) Update(ctx context.Context, id uuid.UUID, params model.UpdatePostParams) (*model.Post, error) {
	s.updated = &params
	return &model.Post{ID: id}, nil
}
func (s *stubPostRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	s.deleteCalled = true
	return true, nil
}

func ownedPost(authorID uuid.UUID) *model.PostWithAuthor {
	return &model.PostWithAuthor{Post: model.Post{ID: uuid.New(), AuthorID: authorID}}
}

func TestCreatePostSetsActorAsAuthor(t *testing.T) {
	repo := &stubPostRepo{}
	svc := NewPostService(repo)
	actor := shared.Actor{ID: uuid.New(), Role: shared.RoleAuthor}

	_, err := svc.CreatePost(context.Background(), actor, model.CreatePostRequest{
		Title:    "t",
		Content:  "c",
		Category: "tech",
	})

	require.NoError(t, err)
	require.NotNil(t, repo.created)
	assert.Equal(t, actor.ID, repo.created.AuthorID)
}

func TestCreatePostRejectsInvalidRequest(t *testing.T) {
	repo := &stubPostRepo{}
	svc := NewPostService(repo)

	_, err := svc.CreatePost(context.Background(), shared.Actor{ID: uuid.New()}, model.CreatePostRequest{})

	assert.Error(t, err)
	assert.Nil(t, repo.created)
}

func TestUpdatePostOwnership(t *testing.T) {
	owner := uuid.New()
	title := "patched"

	t.Run("owner may update", func(t *testing.T) {
		repo := &stubPostRepo{getResult: ownedPost(owner)}
		svc := NewPostService(repo)

		post, err := svc.UpdatePost(context.Background(), shared.Actor{ID: owner, Role: shared.RoleAuthor},
			uuid.New(), model.UpdatePostRequest{Title: &title})

		require.NoError(t, err)
		assert.NotNil(t, post)
		assert.NotNil(t, repo.updated)
	})

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := &stubPostRepo{getResult: ownedPost(owner)}
		svc := NewPostService(repo)

		_, err := svc.UpdatePost(context.Background(), shared.Actor{ID: uuid.New(), Role: shared.RoleAuthor},
			uuid.New(), model.UpdatePostRequest{Title: &title})

		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.Nil(t, repo.updated)
	})

	t.Run("admin may update anything", func(t *testing.T) {
		repo := &stubPostRepo{getResult: ownedPost(owner)}
		svc := NewPostService(repo)

		_, err := svc.UpdatePost(context.Background(), shared.Actor{ID: uuid.New(), Role: shared.RoleAdmin},
			uuid.New(), model.UpdatePostRequest{Title: &title})

		assert.NoError(t, err)
	})

	t.Run("missing post is nil nil", func(t *testing.T) {
		repo := &stubPostRepo{getResult: nil}
		svc := NewPostService(repo)

		post, err := svc.UpdatePost(context.Background(), shared.Actor{ID: owner},
			uuid.New(), model.UpdatePostRequest{Title: &title})

		assert.NoError(t, err)
		assert.Nil(t, post)
	})
}

func TestDeletePostOwnership(t *testing.T) {
	owner := uuid.New()

	t.Run("stranger is forbidden", func(t *testing.T) {
		repo := &stubPostRepo{getResult: ownedPost(owner)}
		svc := NewPostService(repo)

		_, err := svc.DeletePost(context.Background(), shared.Actor{ID: uuid.New(), Role: shared.RoleAuthor}, uuid.New())

		assert.ErrorIs(t, err, model.ErrForbidden)
		assert.False(t, repo.deleteCalled)
	})

	t.Run("missing post reports false without error", func(t *testing.T) {
		repo := &stubPostRepo{}
		svc := NewPostService(repo)

		deleted, err := svc.DeletePost(context.Background(), shared.Actor{ID: owner}, uuid.New())

		assert.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("owner deletes", func(t *testing.T) {
		repo := &stubPostRepo{getResult: ownedPost(owner)}
		svc := NewPostService(repo)

		deleted, err := svc.DeletePost(context.Background(), shared.Actor{ID: owner, Role: shared.RoleAuthor}, uuid.New())

		require.NoError(t, err)
		assert.True(t, deleted)
	})
}
