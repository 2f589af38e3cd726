package repository

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	pgx "github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dwsetiawan/facility-auth/internal/entity"
)

// SessionRepository tracks tokens that are still valid. A token whose JTI has
// no live row here is treated as invalidated.
type SessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) SaveSession(ctx context.Context, jti uuid.UUID, userID int64, expiresAt time.Time) error {
	q := `INSERT INTO sessions (id, user_id, expires_at) VALUES ($1, $2, $3)`

	_, err := r.db.Exec(ctx, q, jti, userID, expiresAt.Unix())
	if err != nil {
		return err
	}

	return nil
}

func (r *SessionRepository) FindSession(ctx context.Context, jti uuid.UUID) error {
	var found uuid.UUID

	q := `
	SELECT id
	FROM sessions
	WHERE id = $1
	AND expires_at > EXTRACT(EPOCH FROM NOW())`

	err := r.db.QueryRow(ctx, q, jti).Scan(&found)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.ErrNotFound
		}

		return err
	}

	return nil
}

func (r *SessionRepository) DeleteSession(ctx context.Context, jti uuid.UUID) error {
	q := `DELETE FROM sessions WHERE id = $1`

	tag, err := r.db.Exec(ctx, q, jti)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return entity.ErrNotFound
	}

	return nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	q := `DELETE FROM sessions WHERE user_id = $1`

	_, err := r.db.Exec(ctx, q, userID)
	if err != nil {
		return err
	}

	return nil
}

func (r *SessionRepository) CleanExpired(ctx context.Context) error {
	q := `DELETE FROM sessions WHERE expires_at < EXTRACT(EPOCH FROM NOW())`

	_, err := r.db.Exec(ctx, q)
	if err != nil {
		return err
	}

	return nil
}
