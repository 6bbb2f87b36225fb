package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"contenthub-backend/internal/domains/user/model"
)

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresUserRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

const userColumns = `id, email, name, image, role, created_at, updated_at`

func scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Image,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Get looks a user up by primary key.
func (r *postgresUserRepository) Get(ctx context.Context, id uuid.UUID) (*model.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	u, err := scanUser(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return u, nil
}

// Upsert inserts the user or merges the supplied columns into the
// existing row. created_at is preserved on update; updated_at is always
// refreshed. This is the only column-level merge write in the system.
func (r *postgresUserRepository) Upsert(ctx context.Context, params model.UpsertUserParams) (*model.User, error) {
	if params.ID == uuid.Nil {
		params.ID = uuid.New()
	}

	query := fmt.Sprintf(`
		INSERT INTO users (id, email, name, image, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, COALESCE($5, 'user'), $6, $6)
		ON CONFLICT (id) DO UPDATE SET
			email      = COALESCE(EXCLUDED.email, users.email),
			name       = COALESCE(EXCLUDED.name, users.name),
			image      = COALESCE(EXCLUDED.image, users.image),
			role       = COALESCE($5, users.role),
			updated_at = EXCLUDED.updated_at
		RETURNING %s
	`, userColumns)

	now := time.Now().UTC()

	u, err := scanUser(r.pool.QueryRow(ctx, query,
		params.ID,
		params.Email,
		params.Name,
		params.Image,
		params.Role,
		now,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "email") {
			return nil, model.ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	return u, nil
}

// Delete removes the user row. The schema cascades the delete to all of
// the user's posts, videos, and comments; nothing is duplicated here.
func (r *postgresUserRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result, err := r.pool.Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete user: %w", err)
	}

	return result.RowsAffected() > 0, nil
}
