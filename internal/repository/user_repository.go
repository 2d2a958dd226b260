package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/aura-journal/internal/model"
)

type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userCols = "user_id,email,password_hash,first_name,last_name,is_active,is_verified,created_at,updated_at,last_login"

// Create inserts a user with a fresh UUID and returns the stored record.
// The password hash is produced by the caller; this layer never sees the
// plain secret.
func (r *UserRepo) Create(ctx context.Context, email, passwordHash string, firstName, lastName *string) (model.User, error) {
	id := uuid.NewString()
	now := time.Now().UTC()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (user_id, email, password_hash, first_name, last_name, created_at, updated_at) VALUES (?,?,?,?,?,?,?)",
		id, email, passwordHash, firstName, lastName, now, now)
	if err != nil {
		// 1062 = ER_DUP_ENTRY; the uniqueness check in the service can race.
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return model.User{}, ErrEmailExists
		}
		return model.User{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (model.User, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+userCols+" FROM users WHERE user_id=? LIMIT 1", id))
}

// UpdateLastLogin records the time of a successful login.
func (r *UserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET last_login=? WHERE user_id=?", at, id)
	return err
}

func (r *UserRepo) scanOne(row *sql.Row) (model.User, error) {
	var (
		u         model.User
		firstName sql.NullString
		lastName  sql.NullString
		lastLogin sql.NullTime
	)
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &firstName, &lastName,
		&u.IsActive, &u.IsVerified, &u.CreatedAt, &u.UpdatedAt, &lastLogin)
	if err != nil {
		return model.User{}, err
	}
	if firstName.Valid {
		u.FirstName = &firstName.String
	}
	if lastName.Valid {
		u.LastName = &lastName.String
	}
	if lastLogin.Valid {
		t := lastLogin.Time
		u.LastLogin = &t
	}
	return u, nil
}
