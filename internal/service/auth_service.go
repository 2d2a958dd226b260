package service

import (
	"context"
	"crypto/subtle"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/aura-journal/internal/model"
	"github.com/iliyamo/aura-journal/internal/repository"
	"github.com/iliyamo/aura-journal/internal/utils"
)

// UserStore is the account persistence consumed by AuthService.  Implemented
// by repository.UserRepo; tests substitute in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, email, passwordHash string, firstName, lastName *string) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
}

// SessionStore is the session persistence consumed by AuthService.
// Implemented by repository.SessionRepo.
type SessionStore interface {
	Create(ctx context.Context, id, userID, refreshHash string, expiresAt time.Time) (model.Session, error)
	GetActive(ctx context.Context, id string) (model.Session, error)
	Rotate(ctx context.Context, id, oldHash, newHash string, expiresAt time.Time) error
	Invalidate(ctx context.Context, id string) (bool, error)
	InvalidateAllForUser(ctx context.Context, userID string) (int64, error)
}

// AuthConfig carries the immutable token and hashing parameters, loaded once
// at startup and passed into the constructor.  Nothing reads global state at
// request time.
type AuthConfig struct {
	JWTSecret  string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	BcryptCost int
}

// TokenPair is the login/refresh response body.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// AuthService ties the credential, token and session pieces into the public
// authentication operations.
type AuthService struct {
	cfg      AuthConfig
	users    UserStore
	sessions SessionStore
}

func NewAuthService(cfg AuthConfig, users UserStore, sessions SessionStore) *AuthService {
	return &AuthService{cfg: cfg, users: users, sessions: sessions}
}

// Register creates an account with a hashed password.  The email must be
// normalized and the password validated before calling; Register only
// enforces uniqueness.
func (s *AuthService) Register(ctx context.Context, email, password string, firstName, lastName *string) (model.User, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return model.User{}, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := utils.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.users.Create(ctx, email, hash, firstName, lastName)
	if err != nil {
		// The uniqueness check above can race with a concurrent register.
		if errors.Is(err, repository.ErrEmailExists) {
			return model.User{}, ErrEmailTaken
		}
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

// Login verifies credentials and opens a session.  The session id is
// pre-allocated so the tokens can carry it before the row exists; one insert
// then commits the whole login (no placeholder-and-rotate dance, no partial
// state on failure).
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TokenPair{}, ErrInvalidCredentials
		}
		return TokenPair{}, fmt.Errorf("lookup email: %w", err)
	}
	if !u.IsActive {
		return TokenPair{}, ErrInvalidCredentials
	}

	ok, err := utils.VerifyPassword(u.PasswordHash, password)
	if err != nil {
		// A corrupt digest is a storage fault, not a failed login.
		return TokenPair{}, fmt.Errorf("verify password for %s: %w", u.ID, err)
	}
	if !ok {
		return TokenPair{}, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	pair, refreshHash, err := s.issuePair(u, sessionID)
	if err != nil {
		return TokenPair{}, err
	}

	expiresAt := time.Now().UTC().Add(s.cfg.RefreshTTL)
	if _, err := s.sessions.Create(ctx, sessionID, u.ID, refreshHash, expiresAt); err != nil {
		return TokenPair{}, fmt.Errorf("create session: %w", err)
	}

	if err := s.users.UpdateLastLogin(ctx, u.ID, time.Now().UTC()); err != nil {
		log.Printf("auth: update last_login for %s failed: %v", u.ID, err)
	}
	return pair, nil
}

// Refresh exchanges a valid refresh token for a new pair and rotates the
// session's stored hash.  The rotation is a compare-and-swap on the old
// hash, so of two concurrent refreshes exactly one wins; the loser gets
// ErrInvalidRefreshToken.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := utils.VerifyToken(s.cfg.JWTSecret, refreshToken, utils.TokenRefresh)
	if err != nil {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	sess, err := s.sessions.GetActive(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, fmt.Errorf("load session: %w", err)
	}

	oldHash := utils.HashTokenRaw(refreshToken)
	if subtle.ConstantTimeCompare([]byte(oldHash), []byte(sess.RefreshTokenHash)) != 1 {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	if time.Now().UTC().After(sess.ExpiresAt) {
		if _, err := s.sessions.Invalidate(ctx, sess.ID); err != nil {
			log.Printf("auth: invalidate expired session %s failed: %v", sess.ID, err)
		}
		return TokenPair{}, ErrSessionExpired
	}

	u, err := s.users.GetByID(ctx, sess.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return TokenPair{}, ErrUserInactive
		}
		return TokenPair{}, fmt.Errorf("load user: %w", err)
	}
	if !u.IsActive {
		return TokenPair{}, ErrUserInactive
	}

	pair, newHash, err := s.issuePair(u, sess.ID)
	if err != nil {
		return TokenPair{}, err
	}
	newExpiresAt := time.Now().UTC().Add(s.cfg.RefreshTTL)

	if err := s.sessions.Rotate(ctx, sess.ID, oldHash, newHash, newExpiresAt); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			// Lost the race against a concurrent refresh or a logout.
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, fmt.Errorf("rotate session: %w", err)
	}
	return pair, nil
}

// CurrentUser resolves an access token to its account: cryptographic check,
// then session liveness, then account liveness.
func (s *AuthService) CurrentUser(ctx context.Context, accessToken string) (model.User, error) {
	claims, err := utils.VerifyToken(s.cfg.JWTSecret, accessToken, utils.TokenAccess)
	if err != nil {
		return model.User{}, ErrInvalidAccessToken
	}

	if _, err := s.sessions.GetActive(ctx, claims.SessionID); err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return model.User{}, ErrSessionInactive
		}
		return model.User{}, fmt.Errorf("load session: %w", err)
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrUserInactive
		}
		return model.User{}, fmt.Errorf("load user: %w", err)
	}
	if !u.IsActive {
		return model.User{}, ErrUserInactive
	}
	return u, nil
}

// Logout invalidates the session named by the refresh token.  The session is
// resolved by id alone, without a hash comparison, so any refresh token ever
// issued for a session suffices to kill it, including one already rotated
// away.  Logout never reports a failure to the caller; an unusable token
// simply leaves nothing to do.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	claims, err := utils.VerifyToken(s.cfg.JWTSecret, refreshToken, utils.TokenRefresh)
	if err != nil {
		return
	}
	if _, err := s.sessions.Invalidate(ctx, claims.SessionID); err != nil {
		log.Printf("auth: invalidate session %s failed: %v", claims.SessionID, err)
	}
}

// LogoutAll invalidates every active session of the account behind the
// access token and reports how many were revoked.
func (s *AuthService) LogoutAll(ctx context.Context, accessToken string) (int64, error) {
	u, err := s.CurrentUser(ctx, accessToken)
	if err != nil {
		return 0, err
	}
	n, err := s.sessions.InvalidateAllForUser(ctx, u.ID)
	if err != nil {
		return 0, fmt.Errorf("invalidate sessions: %w", err)
	}
	return n, nil
}

// issuePair mints an access/refresh pair bound to the session and returns
// the pair plus the hash of the refresh token for storage.
func (s *AuthService) issuePair(u model.User, sessionID string) (TokenPair, string, error) {
	access, err := utils.NewToken(s.cfg.JWTSecret, utils.TokenAccess, u.ID, u.Email, sessionID, s.cfg.AccessTTL)
	if err != nil {
		return TokenPair{}, "", fmt.Errorf("issue access token: %w", err)
	}
	refresh, err := utils.NewToken(s.cfg.JWTSecret, utils.TokenRefresh, u.ID, u.Email, sessionID, s.cfg.RefreshTTL)
	if err != nil {
		return TokenPair{}, "", fmt.Errorf("issue refresh token: %w", err)
	}
	pair := TokenPair{
		AccessToken:  access.Token,
		RefreshToken: refresh.Token,
		TokenType:    "bearer",
		ExpiresIn:    int(s.cfg.AccessTTL.Seconds()),
	}
	return pair, utils.HashTokenRaw(refresh.Token), nil
}
