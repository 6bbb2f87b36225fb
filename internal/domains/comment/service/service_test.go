package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contenthub-backend/internal/domains/comment/model"
	"contenthub-backend/internal/shared"
)

type stubCommentRepo struct {
	getResult *model.CommentWithAuthor
	created   *model.CreateCommentParams
}

func (s *stubCommentRepo) ListByPost(ctx context.Context, postID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error) {
	return nil, nil
}
func (s *stubCommentRepo) ListByVideo(ctx context.Context, videoID uuid.UUID, page shared.Page) ([]model.CommentWithAuthor, error) {
	return nil, nil
}
func (s *stubCommentRepo) Get(ctx context.Context, id uuid.UUID) (*model.CommentWithAuthor, error) {
	return s.getResult, nil
}
func (s *stubCommentRepo) Create(ctx context.Context, params model.CreateCommentParams) (*model.Comment, error) {
	s.created = &params
	return &model.Comment{ID: uuid.New(), Content: params.Content, AuthorID: params.AuthorID}, nil
}
func (s *stubCommentRepo) Update(ctx context.Context, id uuid.UUID, params model.UpdateCommentParams) (*model.Comment, error) {
	return &model.Comment{ID: id}, nil
}
func (s *stubCommentRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	return true, nil
}

func TestCreateCommentParentPolicy(t *testing.T) {
	actor := shared.Actor{ID: uuid.New(), Role: shared.RoleUser}
	postID := uuid.New()
	videoID := uuid.New()

	t.Run("strict rejects both parents", func(t *testing.T) {
		repo := &stubCommentRepo{}
		svc := NewCommentService(repo, model.ParentPolicyStrict)

		_, err := svc.CreateComment(context.Background(), actor, model.CreateCommentRequest{
			Content: "hi",
			PostID:  &postID,
			VideoID: &videoID,
		})

		assert.ErrorIs(t, err, model.ErrBothParents)
		assert.Nil(t, repo.created)
	})

	t.Run("permissive keeps the post parent", func(t *testing.T) {
		repo := &stubCommentRepo{}
		svc := NewCommentService(repo, model.ParentPolicyPermissive)

		_, err := svc.CreateComment(context.Background(), actor, model.CreateCommentRequest{
			Content: "hi",
			PostID:  &postID,
			VideoID: &videoID,
		})

		require.NoError(t, err)
		require.NotNil(t, repo.created)
		require.NotNil(t, repo.created.Parent.PostID())
		assert.Equal(t, postID, *repo.created.Parent.PostID())
		assert.Nil(t, repo.created.Parent.VideoID())
	})

	t.Run("parentless comment rejected under both policies", func(t *testing.T) {
		for _, policy := range []model.ParentPolicy{model.ParentPolicyStrict, model.ParentPolicyPermissive} {
			svc := NewCommentService(&stubCommentRepo{}, policy)

			_, err := svc.CreateComment(context.Background(), actor, model.CreateCommentRequest{Content: "hi"})

			assert.ErrorIs(t, err, model.ErrNoParent)
		}
	})

	t.Run("author is the actor", func(t *testing.T) {
		repo := &stubCommentRepo{}
		svc := NewCommentService(repo, model.ParentPolicyStrict)

		_, err := svc.CreateComment(context.Background(), actor, model.CreateCommentRequest{
			Content: "hi",
			VideoID: &videoID,
		})

		require.NoError(t, err)
		assert.Equal(t, actor.ID, repo.created.AuthorID)
	})
}

func TestUpdateCommentOwnership(t *testing.T) {
	owner := uuid.New()
	content := "edited"
	existing := &model.CommentWithAuthor{Comment: model.Comment{ID: uuid.New(), AuthorID: owner}}

	t.Run("stranger is forbidden", func(t *testing.T) {
		svc := NewCommentService(&stubCommentRepo{getResult: existing}, model.ParentPolicyStrict)

		_, err := svc.UpdateComment(context.Background(), shared.Actor{ID: uuid.New(), Role: shared.RoleUser},
			existing.ID, model.UpdateCommentRequest{Content: &content})

		assert.ErrorIs(t, err, model.ErrForbidden)
	})

	t.Run("owner may edit", func(t *testing.T) {
		svc := NewCommentService(&stubCommentRepo{getResult: existing}, model.ParentPolicyStrict)

		comment, err := svc.UpdateComment(context.Background(), shared.Actor{ID: owner, Role: shared.RoleUser},
			existing.ID, model.UpdateCommentRequest{Content: &content})

		require.NoError(t, err)
		assert.NotNil(t, comment)
	})

	t.Run("missing comment is nil nil", func(t *testing.T) {
		svc := NewCommentService(&stubCommentRepo{}, model.ParentPolicyStrict)

		comment, err := svc.UpdateComment(context.Background(), shared.Actor{ID: owner},
			uuid.New(), model.UpdateCommentRequest{Content: &content})

		assert.NoError(t, err)
		assert.Nil(t, comment)
	})
}
