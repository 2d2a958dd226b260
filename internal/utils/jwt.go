package utils // package utils provides helper functions for token creation and hashing

import (
    "crypto/sha256" // SHA-256 hashing for refresh tokens
    "encoding/hex"  // hex encoding for digests
    "errors"        // sentinel verification errors
    "time"          // expirations and issue times

    "github.com/golang-jwt/jwt/v5" // JWT library for creating signed tokens
    "github.com/google/uuid"       // fresh jti per issued token
)

// Token type discriminators carried in the token_type claim.  A token is only
// accepted by an operation expecting its own kind.
const (
    TokenAccess  = "access"
    TokenRefresh = "refresh"
)

// Verification failures are distinguished internally even though the HTTP
// layer collapses them into one generic 401 so callers cannot probe which
// sub-check rejected a token.
var (
    ErrTokenMalformed = errors.New("malformed token")
    ErrTokenSignature = errors.New("invalid token signature")
    ErrTokenExpired   = errors.New("token expired")
    ErrWrongTokenType = errors.New("wrong token type")
)

// Claims is the claim set embedded in every signed token.  Both access and
// refresh tokens share the structure; only TokenType and the TTL differ.
// SessionID binds the token to a user_sessions row so the server can revoke
// it; the jti (RegisteredClaims.ID) is freshly random per call and never
// reused, even for same-session reissues.
type Claims struct {
    UserID    string `json:"user_id"`
    Email     string `json:"email"`
    SessionID string `json:"session_id"`
    TokenType string `json:"token_type"`
    jwt.RegisteredClaims
}

// SignedToken pairs a serialized JWT with its expiry.  The Exp field lets
// callers report expires_in without re-parsing the token.
type SignedToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// NewToken builds and signs an HS256 JWT of the given kind for a user and
// session.  The expiry is computed by adding the per-kind TTL to the current
// UTC time.
func NewToken(secret, kind, userID, email, sessionID string, ttl time.Duration) (SignedToken, error) {
    now := time.Now().UTC()
    exp := now.Add(ttl)
    claims := Claims{
        UserID:    userID,
        Email:     email,
        SessionID: sessionID,
        TokenType: kind,
        RegisteredClaims: jwt.RegisteredClaims{
            ExpiresAt: jwt.NewNumericDate(exp),
            IssuedAt:  jwt.NewNumericDate(now),
            ID:        uuid.NewString(), // jti
        },
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return SignedToken{}, err
    }
    return SignedToken{Token: signed, Exp: exp}, nil
}

// VerifyToken checks the signature and expiry of a serialized token and
// asserts its token_type matches the expected kind.  On success the full
// claim set is returned.
func VerifyToken(secret, raw, kind string) (*Claims, error) {
    tok, err := jwt.ParseWithClaims(raw, &Claims{}, func(t *jwt.Token) (interface{}, error) {
        // Reject tokens signed with anything but HMAC.
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrTokenSignature
        }
        return []byte(secret), nil
    }, jwt.WithValidMethods([]string{"HS256"}))
    if err != nil {
        switch {
        case errors.Is(err, jwt.ErrTokenExpired):
            return nil, ErrTokenExpired
        case errors.Is(err, jwt.ErrTokenSignatureInvalid):
            return nil, ErrTokenSignature
        default:
            return nil, ErrTokenMalformed
        }
    }
    claims, ok := tok.Claims.(*Claims)
    if !ok || !tok.Valid {
        return nil, ErrTokenMalformed
    }
    if claims.TokenType != kind {
        return nil, ErrWrongTokenType
    }
    return claims, nil
}

// HashTokenRaw returns the SHA-256 hash of a serialized refresh token as a
// hex string.  Storing only the hash prevents attackers from using stolen
// database rows to refresh sessions.
func HashTokenRaw(raw string) string {
    sum := sha256.Sum256([]byte(raw))
    return hex.EncodeToString(sum[:])
}
