package repository

import (
	"context"
	"errors"
	"time"

	"github.com/Domenick1991/travelbook/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type SessionRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.Session, error)
	Create(ctx context.Context, session *domain.Session) error
	DeleteExpiredBefore(ctx context.Context, deadline time.Time) (int64, error)
}

type PGSessionRepository struct {
	db *pgxpool.Pool
}

func NewSessionRepository(db *pgxpool.Pool) SessionRepository {
	return &PGSessionRepository{db: db}
}

const sessionColumns = "id, token, user_id, expires_at, created_at, updated_at, ip_address, user_agent"

func (r *PGSessionRepository) GetByToken(ctx context.Context, token string) (*domain.Session, error) {
	row := r.db.QueryRow(ctx, "SELECT "+sessionColumns+" FROM session WHERE token=$1", token)
	var s domain.Session
	if err := row.Scan(&s.ID, &s.Token, &s.UserID, &s.ExpiresAt, &s.CreatedAt, &s.UpdatedAt, &s.IPAddress, &s.UserAgent); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Create exists for the seed tool; in production session rows are written
// by the external auth provider at login.
func (r *PGSessionRepository) Create(ctx context.Context, session *domain.Session) error {
	return r.db.QueryRow(ctx, `INSERT INTO session (id, token, user_id, expires_at, ip_address, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at, updated_at`,
		session.ID, session.Token, session.UserID, session.ExpiresAt, session.IPAddress, session.UserAgent).
		Scan(&session.CreatedAt, &session.UpdatedAt)
}

// DeleteExpiredBefore removes sessions whose expiry instant is at or before
// the deadline. Run periodically by the worker; an expired session is
// already rejected at verification time, this just keeps the table small.
func (r *PGSessionRepository) DeleteExpiredBefore(ctx context.Context, deadline time.Time) (int64, error) {
	cmd, err := r.db.Exec(ctx, "DELETE FROM session WHERE expires_at <= $1", deadline)
	if err != nil {
		return 0, err
	}
	return cmd.RowsAffected(), nil
}

var _ SessionRepository = (*PGSessionRepository)(nil)
