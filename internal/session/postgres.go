package session

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore persists sessions so tokens and pending bookings survive
// gateway restarts (the original client got this for free from browser local
// storage).
type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (r *PostgresStore) Get(ctx context.Context, id string) (*Session, error) {
	const q = `
SELECT id, COALESCE(token,''), COALESCE(refresh_token,''),
       COALESCE(user_id,''), COALESCE(user_email,''), COALESCE(user_name,''), COALESCE(user_role,''),
       COALESCE(pending_booking,''), created_at, updated_at
FROM sessions
WHERE id = $1
`
	s := &Session{}
	var pending string
	err := r.db.QueryRow(ctx, q, id).Scan(
		&s.ID, &s.Token, &s.RefreshToken,
		&s.UserID, &s.UserEmail, &s.UserName, &s.UserRole,
		&pending, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if pending != "" {
		s.PendingBooking = []byte(pending)
	}
	return s, nil
}

func (r *PostgresStore) Put(ctx context.Context, s *Session) error {
	const q = `
INSERT INTO sessions (id, token, refresh_token, user_id, user_email, user_name, user_role, pending_booking, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now(), now())
ON CONFLICT (id) DO UPDATE SET
  token = EXCLUDED.token,
  refresh_token = EXCLUDED.refresh_token,
  user_id = EXCLUDED.user_id,
  user_email = EXCLUDED.user_email,
  user_name = EXCLUDED.user_name,
  user_role = EXCLUDED.user_role,
  pending_booking = EXCLUDED.pending_booking,
  updated_at = now()
`
	_, err := r.db.Exec(ctx, q,
		s.ID, s.Token, s.RefreshToken,
		s.UserID, s.UserEmail, s.UserName, s.UserRole,
		string(s.PendingBooking),
	)
	return err
}

func (r *PostgresStore) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM sessions WHERE id = $1`
	_, err := r.db.Exec(ctx, q, id)
	return err
}

// PurgeIdle drops sessions not touched within ttl.
func (r *PostgresStore) PurgeIdle(ctx context.Context, ttl time.Duration) (int64, error) {
	const q = `DELETE FROM sessions WHERE updated_at < $1`
	tag, err := r.db.Exec(ctx, q, time.Now().Add(-ttl))
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
