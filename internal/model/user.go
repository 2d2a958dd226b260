package model

import "time"

// User represents an account record as stored in the `users` table.  Each
// field corresponds to a column in the database.  The json tags are omitted
// here because these structs are used internally by the repository layer;
// handlers define separate response types with appropriate JSON tags and
// never expose PasswordHash.
type User struct {
    ID           string     // users.user_id
    Email        string     // users.email
    PasswordHash string     // users.password_hash
    FirstName    *string    // users.first_name (nullable)
    LastName     *string    // users.last_name (nullable)
    IsActive     bool       // users.is_active
    IsVerified   bool       // users.is_verified
    CreatedAt    time.Time  // users.created_at
    UpdatedAt    time.Time  // users.updated_at
    LastLogin    *time.Time // users.last_login (nullable)
}

// Session models a row in the `user_sessions` table: one logical login of
// one account on one device.  The plain refresh token is never stored; only
// its SHA-256 hash.  An inactive session accepts no further refresh or
// access-token-derived operations even if ExpiresAt has not elapsed.
type Session struct {
    ID               string    // user_sessions.session_id
    UserID           string    // user_sessions.user_id
    RefreshTokenHash string    // user_sessions.refresh_token_hash
    ExpiresAt        time.Time // user_sessions.expires_at
    IsActive         bool      // user_sessions.is_active
    CreatedAt        time.Time // user_sessions.created_at
}
