package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/aura-journal/internal/model"
)

// EntryRepo persists journal entries in MySQL.  Analysis results live in the
// insight store, not here.
type EntryRepo struct{ DB *sql.DB }

func NewEntryRepo(db *sql.DB) *EntryRepo { return &EntryRepo{DB: db} }

// Create inserts a journal entry and returns it with its generated id and
// timestamp.
func (r *EntryRepo) Create(ctx context.Context, userID, content string) (model.Entry, error) {
	e := model.Entry{
		ID:        uuid.NewString(),
		UserID:    userID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO entries (entry_id, user_id, content, created_at) VALUES (?,?,?,?)",
		e.ID, e.UserID, e.Content, e.CreatedAt)
	if err != nil {
		return model.Entry{}, err
	}
	return e, nil
}

// ListByUser returns a user's entries, newest first.
func (r *EntryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]model.Entry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	rows, err := r.DB.QueryContext(ctx,
		"SELECT entry_id,user_id,content,created_at FROM entries WHERE user_id=? ORDER BY created_at DESC LIMIT ?",
		userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Entry
	for rows.Next() {
		var e model.Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Content, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
