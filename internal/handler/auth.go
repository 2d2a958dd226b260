package handler

import (
    "context"  // provides context with cancellation for DB calls
    "errors"   // sentinel error matching
    "net/http" // HTTP status codes and primitives
    "strings"  // bearer header handling
    "time"     // request timeouts and response timestamps

    "github.com/labstack/echo/v4" // Echo framework for HTTP routing

    "github.com/iliyamo/aura-journal/internal/model"   // domain records
    "github.com/iliyamo/aura-journal/internal/service" // auth orchestration
    "github.com/iliyamo/aura-journal/internal/utils"   // validation helpers
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Auth *service.AuthService
}

func NewAuthHandler(a *service.AuthService) *AuthHandler {
	return &AuthHandler{Auth: a}
}

// ----- DTOs -----

type registerReq struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResp struct {
	UserID     string    `json:"user_id"`
	Email      string    `json:"email"`
	FirstName  *string   `json:"first_name"`
	LastName   *string   `json:"last_name"`
	IsActive   bool      `json:"is_active"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

func toUserResp(u model.User) userResp {
	return userResp{
		UserID:     u.ID,
		Email:      u.Email,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		IsActive:   u.IsActive,
		IsVerified: u.IsVerified,
		CreatedAt:  u.CreatedAt,
	}
}

// Register: validate, create account, return the record without secrets.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = utils.NormalizeEmail(req.Email)

	// Validation happens entirely before any component is touched; failures
	// report the offending field.
	if err := utils.ValidateEmail(req.Email); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "field": "email"})
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "field": "password"})
	}
	if err := utils.ValidateName(strings.TrimSpace(req.FirstName)); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "field": "first_name"})
	}
	if err := utils.ValidateName(strings.TrimSpace(req.LastName)); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "field": "last_name"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Auth.Register(ctx, req.Email, req.Password,
		optional(req.FirstName), optional(req.LastName))
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to create user"})
	}
	return c.JSON(http.StatusCreated, toUserResp(u))
}

// Login: verify credentials and return a fresh token pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Email = utils.NormalizeEmail(req.Email)
	if req.Email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	pair, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "authentication failed"})
	}
	return c.JSON(http.StatusOK, pair)
}

// Refresh: exchange the bearer refresh token for a new pair, rotating the
// session's stored hash.
func (h *AuthHandler) Refresh(c echo.Context) error {
	raw, ok := bearer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	pair, err := h.Auth.Refresh(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRefreshToken),
			errors.Is(err, service.ErrSessionExpired),
			errors.Is(err, service.ErrUserInactive):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "token refresh failed"})
	}
	return c.JSON(http.StatusOK, pair)
}

// Profile: resolve the bearer access token to its account.
func (h *AuthHandler) Profile(c echo.Context) error {
	raw, ok := bearer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	u, err := h.Auth.CurrentUser(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccessToken),
			errors.Is(err, service.ErrSessionInactive),
			errors.Is(err, service.ErrUserInactive):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "profile lookup failed"})
	}
	return c.JSON(http.StatusOK, toUserResp(u))
}

// Logout: invalidate the session named by the bearer refresh token.  By
// contract this endpoint swallows token errors; from the caller's view a
// logout always succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()

	if raw, ok := bearer(c); ok {
		h.Auth.Logout(ctx, raw)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "successfully logged out"})
}

// LogoutAll: revoke every session of the account behind the bearer access
// token (logout everywhere).
func (h *AuthHandler) LogoutAll(c echo.Context) error {
	raw, ok := bearer(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()

	n, err := h.Auth.LogoutAll(ctx, raw)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAccessToken),
			errors.Is(err, service.ErrSessionInactive),
			errors.Is(err, service.ErrUserInactive):
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "successfully logged out", "sessions_revoked": n})
}

// bearer extracts the credential from the Authorization header.
func bearer(c echo.Context) (string, bool) {
	auth := c.Request().Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return "", false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	return raw, raw != ""
}

// reqCtx bounds every downstream call made for one request.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}

// optional converts a trimmed form value into a nullable column value.
func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
