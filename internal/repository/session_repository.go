package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/iliyamo/aura-journal/internal/model"
)

// SessionRepo persists login sessions (one row per logical login, keyed by a
// caller-supplied UUID, storing only the hash of the current refresh token).
type SessionRepo struct{ DB *sql.DB }

func NewSessionRepo(db *sql.DB) *SessionRepo { return &SessionRepo{DB: db} }

// Create inserts a new active session row.  The session id is generated by
// the caller so it can be embedded in the token claims before the row exists.
func (r *SessionRepo) Create(ctx context.Context, id, userID, refreshHash string, expiresAt time.Time) (model.Session, error) {
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO user_sessions (session_id, user_id, refresh_token_hash, expires_at, created_at) VALUES (?,?,?,?,?)",
		id, userID, refreshHash, expiresAt, now)
	if err != nil {
		return model.Session{}, err
	}
	return model.Session{
		ID:               id,
		UserID:           userID,
		RefreshTokenHash: refreshHash,
		ExpiresAt:        expiresAt,
		IsActive:         true,
		CreatedAt:        now,
	}, nil
}

// GetActive returns the session only if it is still active.  An inactive or
// nonexistent session is reported identically as ErrSessionNotFound.
func (r *SessionRepo) GetActive(ctx context.Context, id string) (model.Session, error) {
	var s model.Session
	err := r.DB.QueryRowContext(ctx,
		"SELECT session_id,user_id,refresh_token_hash,expires_at,is_active,created_at FROM user_sessions WHERE session_id=? AND is_active=1 LIMIT 1",
		id).Scan(&s.ID, &s.UserID, &s.RefreshTokenHash, &s.ExpiresAt, &s.IsActive, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return model.Session{}, err
	}
	return s, nil
}

// Rotate atomically replaces the stored refresh token hash and expiry,
// conditional on the old hash still being current.  The single UPDATE is the
// row-level compare-and-swap that serializes concurrent refresh attempts:
// the loser matches zero rows and gets ErrSessionNotFound, and can never
// resurrect an invalidated session.
func (r *SessionRepo) Rotate(ctx context.Context, id, oldHash, newHash string, expiresAt time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE user_sessions SET refresh_token_hash=?, expires_at=? WHERE session_id=? AND refresh_token_hash=? AND is_active=1",
		newHash, expiresAt, id, oldHash)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// Invalidate marks a session inactive.  Idempotent: the second call returns
// false to signal "already inactive" without treating it as a failure.
func (r *SessionRepo) Invalidate(ctx context.Context, id string) (bool, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE user_sessions SET is_active=0 WHERE session_id=? AND is_active=1", id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// InvalidateAllForUser marks every active session of a user inactive and
// returns how many were affected (logout-everywhere support).
func (r *SessionRepo) InvalidateAllForUser(ctx context.Context, userID string) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE user_sessions SET is_active=0 WHERE user_id=? AND is_active=1", userID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// SweepExpired deactivates active sessions whose expiry has elapsed.  Run
// periodically by the sweeper command; validation also checks expiry lazily,
// so the sweep is purely hygiene.
func (r *SessionRepo) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE user_sessions SET is_active=0 WHERE is_active=1 AND expires_at < ?", now)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
