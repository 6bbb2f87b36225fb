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

	usermodel "contenthub-backend/internal/domains/user/model"
	"contenthub-backend/internal/domains/video/model"
	"contenthub-backend/internal/shared"
	"contenthub-backend/internal/shared/utils"
)

type postgresVideoRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresVideoRepository(pool *pgxpool.Pool) VideoRepository {
	return &postgresVideoRepository{pool: pool}
}

// =====================================================
// ROW SHAPES & MAPPING
// =====================================================

const videoAuthorColumns = `
	v.id, v.title, v.description, v.video_url, v.thumbnail, v.category,
	v.tags, v.duration, v.author_id, v.published, v.created_at, v.updated_at,
	u.id, u.email, u.name, u.image, u.role, u.created_at, u.updated_at`

const videoColumns = `
	id, title, description, video_url, thumbnail, category,
	tags, duration, author_id, published, created_at, updated_at`

type videoAuthorRow struct {
	video model.Video

	authorID        *uuid.UUID
	authorEmail     *string
	authorName      *string
	authorImage     *string
	authorRole      *usermodel.Role
	authorCreatedAt *time.Time
	authorUpdatedAt *time.Time
}

func scanVideoAuthorRow(row pgx.Row) (*videoAuthorRow, error) {
	var r videoAuthorRow
	err := row.Scan(
		&r.video.ID,
		&r.video.Title,
		&r.video.Description,
		&r.video.VideoURL,
		&r.video.Thumbnail,
		&r.video.Category,
		pq.Array(&r.video.Tags),
		&r.video.Duration,
		&r.video.AuthorID,
		&r.video.Published,
		&r.video.CreatedAt,
		&r.video.UpdatedAt,
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

func (r *videoAuthorRow) toVideoWithAuthor() (model.VideoWithAuthor, error) {
	if r.authorID == nil || r.authorRole == nil || r.authorCreatedAt == nil || r.authorUpdatedAt == nil {
		return model.VideoWithAuthor{}, fmt.Errorf("video %s: %w", r.video.ID, model.ErrAuthorMissing)
	}

	return model.VideoWithAuthor{
		Video: r.video,
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

func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID,
		&v.Title,
		&v.Description,
		&v.VideoURL,
		&v.Thumbnail,
		&v.Category,
		pq.Array(&v.Tags),
		&v.Duration,
		&v.AuthorID,
		&v.Published,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *postgresVideoRepository) listVideosWithAuthor(ctx context.Context, query string, args ...interface{}) ([]model.VideoWithAuthor, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list videos query failed: %w", err)
	}
	defer rows.Close()

	videos := make([]model.VideoWithAuthor, 0, shared.DefaultLimit)
	for rows.Next() {
		row, err := scanVideoAuthorRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan video row: %w", err)
		}

		video, err := row.toVideoWithAuthor()
		if err != nil {
			return nil, err
		}
		videos = append(videos, video)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration: %w", err)
	}

	return videos, nil
}

// =====================================================
// READS
// =====================================================

func (r *postgresVideoRepository) List(ctx context.Context, page shared.Page) ([]model.VideoWithAuthor, error) {
	page = page.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM videos v
		LEFT JOIN users u ON v.author_id = u.id
		WHERE v.published = true
		ORDER BY v.created_at DESC
		LIMIT $1 OFFSET $2
	`, videoAuthorColumns)

	return r.listVideosWithAuthor(ctx, query, page.Limit, page.Offset)
}

func (r *postgresVideoRepository) ListByCategory(ctx context.Context, category string, page shared.Page) ([]model.VideoWithAuthor, error) {
	page = page.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM videos v
		LEFT JOIN users u ON v.author_id = u.id
		WHERE v.published = true AND v.category = $1
		ORDER BY v.created_at DESC
		LIMIT $2 OFFSET $3
	`, videoAuthorColumns)

	return r.listVideosWithAuthor(ctx, query, category, page.Limit, page.Offset)
}

func (r *postgresVideoRepository) Get(ctx context.Context, id uuid.UUID) (*model.VideoWithAuthor, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM videos v
		LEFT JOIN users u ON v.author_id = u.id
		WHERE v.id = $1
	`, videoAuthorColumns)

	row, err := scanVideoAuthorRow(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	video, err := row.toVideoWithAuthor()
	if err != nil {
		return nil, err
	}

	return &video, nil
}

func (r *postgresVideoRepository) ListByAuthor(ctx context.Context, authorID uuid.UUID, page shared.Page) ([]model.VideoWithAuthor, error) {
	page = page.Normalize()

	query := fmt.Sprintf(`
		SELECT %s
		FROM videos v
		LEFT JOIN users u ON v.author_id = u.id
		WHERE v.author_id = $1
		ORDER BY v.created_at DESC
		LIMIT $2 OFFSET $3
	`, videoAuthorColumns)

	return r.listVideosWithAuthor(ctx, query, authorID, page.Limit, page.Offset)
}

// Search covers title and description. Videos have no long-form body,
// so the match surface is narrower than for posts.
func (r *postgresVideoRepository) Search(ctx context.Context, searchQuery string, page shared.Page) ([]model.VideoWithAuthor, error) {
	page = page.Normalize()

	textMatch := utils.JoinWithOr([]string{
		"v.title ILIKE $1",
		"v.description ILIKE $1",
	})

	query := fmt.Sprintf(`
		SELECT %s
		FROM videos v
		LEFT JOIN users u ON v.author_id = u.id
		WHERE v.published = true AND (%s)
		ORDER BY v.created_at DESC
		LIMIT $2 OFFSET $3
	`, videoAuthorColumns, textMatch)

	return r.listVideosWithAuthor(ctx, query, utils.LikePattern(searchQuery), page.Limit, page.Offset)
}

// =====================================================
// WRITES
// =====================================================

func (r *postgresVideoRepository) Create(ctx context.Context, params model.CreateVideoParams) (*model.Video, error) {
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}
	if params.Tags == nil {
		params.Tags = []string{}
	}

	query := fmt.Sprintf(`
		INSERT INTO videos (
			id, title, description, video_url, thumbnail, category,
			tags, duration, author_id, published, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		RETURNING %s
	`, videoColumns)

	now := time.Now().UTC()

	video, err := scanVideo(r.pool.QueryRow(ctx, query,
		params.ID,
		params.Title,
		params.Description,
		params.VideoURL,
		params.Thumbnail,
		params.Category,
		pq.Array(params.Tags),
		params.Duration,
		params.AuthorID,
		params.Published,
		now,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to insert video: %w", err)
	}

	return video, nil
}

func (r *postgresVideoRepository) Update(ctx context.Context, id uuid.UUID, params model.UpdateVideoParams) (*model.Video, error) {
	set, args := buildVideoUpdateSet(params)

	query := fmt.Sprintf(`
		UPDATE videos
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, set, len(args)+1, videoColumns)
	args = append(args, id)

	video, err := scanVideo(r.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update video: %w", err)
	}

	return video, nil
}

func buildVideoUpdateSet(params model.UpdateVideoParams) (string, []interface{}) {
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
	if params.Description != nil {
		addClause("description", *params.Description)
	}
	if params.VideoURL != nil {
		addClause("video_url", *params.VideoURL)
	}
	if params.Thumbnail != nil {
		addClause("thumbnail", *params.Thumbnail)
	}
	if params.Category != nil {
		addClause("category", *params.Category)
	}
	if params.Tags != nil {
		addClause("tags", pq.Array(*params.Tags))
	}
	if params.Duration != nil {
		addClause("duration", *params.Duration)
	}
	if params.Published != nil {
		addClause("published", *params.Published)
	}

	addClause("updated_at", time.Now().UTC())

	return strings.Join(clauses, ", "), args
}

func (r *postgresVideoRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete video: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
