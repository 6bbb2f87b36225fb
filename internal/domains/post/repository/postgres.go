package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"

	"contenthub-backend/internal/domains/post/model"
	usermodel "contenthub-backend/internal/domains/user/model"
	"contenthub-backend/internal/shared"
	"contenthub-backend/internal/shared/utils"
)

type postgresPostRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresPostRepository(pool *pgxpool.Pool) PostRepository {
	return &postgresPostRepository{pool: pool}
}

// =====================================================
// ROW SHAPES & MAPPING
// =====================================================

const postAuthorColumns = `
	p.id, p.title, p.content, p.excerpt, p.image, p.category, p.tags,
	p.author_id, p.published, p.created_at, p.updated_at,
	u.id, u.email, u.name, u.image, u.role, u.created_at, u.updated_at`

const postColumns = `
	id, title, content, excerpt, image, category, tags,
	author_id, published, created_at, updated_at`

// postAuthorRow is the flat shape of a post LEFT JOIN users row. The
// author side is scanned through pointers: the join is left so orphaned
// rows surface instead of being silently dropped.
type postAuthorRow struct {
	post model.Post

	authorID        *uuid.UUID
	authorEmail     *string
	authorName      *string
	authorImage     *string
	authorRole      *usermodel.Role
	authorCreatedAt *time.Time
	authorUpdatedAt *time.Time
}

func scanPostAuthorRow(row pgx.Row) (*postAuthorRow, error) {
	var r postAuthorRow
	err := row.Scan(
		&r.post.ID,
		&r.post.Title,
		&r.post.Content,
		&r.post.Excerpt,
		&r.post.Image,
		&r.post.Category,
		pq.Array(&r.post.Tags),
		&r.post.AuthorID,
		&r.post.Published,
		&r.post.CreatedAt,
		&r.post.UpdatedAt,
		&r.authorID,
		&r.authorEmail,
		&r.authorName,
		&r.authorImage,
		&r.authorRole,
		&r.authorCreatedAt,
		&r.authorUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// toPostWithAuthor asserts the author half of the row is present and
// assembles the read view. author_id is a non-null FK, so a missing
// author means the store broke referential integrity.
func (r *postAuthorRow) toPostWithAuthor() (model.PostWithAuthor, error) {
	if r.authorID == nil || r.authorRole == nil || r.authorCreatedAt == nil || r.authorUpdatedAt == nil {
		return model.PostWithAuthor{}, fmt.Errorf("post %s: %w", r.post.ID, model.ErrAuthorMissing)
	}

	return model.PostWithAuthor{
		Post: r.post,
		Author: usermodel.User{
			ID:        *r.authorID,
			Email:     r.authorEmail,
			Name:      r.authorName,
			Image:     r.authorImage,
			Role:      *r.authorRole,
			CreatedAt: *r.authorCreatedAt,
			UpdatedAt: *r.authorUpdatedAt,
		},
	}, nil
}

func scanPost(row pgx.Row) (*model.Post, error) {
	var p model.Post
	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Content,
		&p.Excerpt,
		&p.Image,
		&p.Category,
		pq.Array(&p.Tags),
		&p.AuthorID,
		&p.Published,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// listPostsWithAuthor runs a joined query and maps every row.
func (r *postgresPostRepository) listPostsWithAuthor(ctx context.Context, query string, args ...interface{}) ([]model.PostWithAuthor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list posts query failed: %w", err)
	}
	defer rows.Close()

	posts := make([]model.PostWithAuthor, 0, shared.DefaultLimit)
	for rows.Next() {
		row, err := scanPostAuthorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post row: %w", err)
		}

		post, err := row.toPostWithAuthor()
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return posts, nil
}

// =====================================================
// READS
// =====================================================

func (r *postgresPostRepository) List(ctx context.Context, page shared.Page) ([]model.PostWithAuthor, error) {
	page = page.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		LEFT JOIN users u ON p.author_id = u.id
		WHERE p.published = true
		ORDER BY p.created_at DESC
		LIMIT $1 OFFSET $2
	`, postAuthorColumns)

	return r.listPostsWithAuthor(ctx, query, page.Limit, page.Offset)
}

func (r *postgresPostRepository) ListByCategory(ctx context.Context, category string, page shared.Page) ([]model.PostWithAuthor, error) {
	page = page.Normalize()

	conditions := []string{"p.published = true", "p.category = $1"}
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		LEFT JOIN users u ON p.author_id = u.id
		WHERE %s
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, postAuthorColumns, utils.JoinWithAnd(conditions))

	return r.listPostsWithAuthor(ctx, query, category, page.Limit, page.Offset)
}

// Get has no publish gate on purpose: direct links serve as author
// previews for unpublished posts.
func (r *postgresPostRepository) Get(ctx context.Context, id uuid.UUID) (*model.PostWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		LEFT JOIN users u ON p.author_id = u.id
		WHERE p.id = $1
	`, postAuthorColumns)

	row, err := scanPostAuthorRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	post, err := row.toPostWithAuthor()
	if err != nil {
		return nil, err
	}

	return &post, nil
}

func (r *postgresPostRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.PostWithAuthor, error) {
	page = page.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		LEFT JOIN users u ON p.author_id = u.id
		WHERE p.author_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, postAuthorColumns)

	return r.listPostsWithAuthor(ctx, query, authorID, page.Limit, page.Offset)
}

// Search is a case-insensitive substring match, OR across the text
// fields, AND the publish gate. Order is recency, not relevance.
func (r *postgresPostRepository) Search(ctx context.Context, searchQuery string, page shared.Page) ([]model.PostWithAuthor, error) {
	page = page.Normalize()

	textMatch := utils.JoinWithOr([]string{
		"p.title ILIKE $1",
		"p.content ILIKE $1",
		"p.excerpt ILIKE $1",
	})

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		LEFT JOIN users u ON p.author_id = u.id
		WHERE p.published = true AND (%s)
		ORDER BY p.created_at DESC
		LIMIT $2 OFFSET $3
	`, postAuthorColumns, textMatch)

	return r.listPostsWithAuthor(ctx, query, utils.LikePattern(searchQuery), page.Limit, page.Offset)
}

// =====================================================
// WRITES
// =====================================================

// Create inserts the post and returns the fully materialized row so the
// caller sees the generated id and timestamps.
func (r *postgresPostRepository) Create(ctx context.Context, params model.CreatePostParams) (*model.Post, error) {
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}
	if params.Tags == nil {
		params.Tags = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO posts (
			id, title, content, excerpt, image, category, tags,
			author_id, published, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
		RETURNING %s
	`, postColumns)

	now := time.Now().UTC()

	post, err := scanPost(r.pool.QueryRow(ctx, query,
		params.ID,
		params.Title,
		params.Content,
		params.Excerpt,
		params.Image,
		params.Category,
		pq.Array(params.Tags),
		params.AuthorID,
		params.Published,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}

	return post, nil
}

// Update applies only the supplied fields and forces updated_at to now.
func (r *postgresPostRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdatePostParams) (*model.Post, error) {
	set, args := buildPostUpdateSet(params)

	query := fmt.Sprintf(`
		UPDATE posts
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, set, len(args)+1, postColumns)
	args = append(args, id)

	post, err := scanPost(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}

	return post, nil
}

// buildPostUpdateSet assembles the SET clause for a partial patch.
// updated_at is always included, whatever the caller supplied.
func buildPostUpdateSet(params model.UpdatePostParams) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	argPos := 1

	addClause := func(column string, value interface{}) {
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, argPos))
		args = append(args, value)
		argPos++
	}

	if params.Title != nil {
		addClause("title", *params.Title)
	}
	if params.Content != nil {
		addClause("content", *params.Content)
	}
	if params.Excerpt != nil {
		addClause("excerpt", *params.Excerpt)
	}
	if params.Image != nil {
		addClause("image", *params.Image)
	}
	if params.Category != nil {
		addClause("category", *params.Category)
	}
	if params.Tags != nil {
		addClause("tags", pq.Array(*params.Tags))
	}
	if params.Published != nil {
		addClause("published", *params.Published)
	}

	addClause("updated_at", time.Now().UTC())

	return strings.Join(clauses, ", "), args
}

// Delete removes the post; comments cascade via the schema. A missing
// id reports false, never an error.
func (r *postgresPostRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete post: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
