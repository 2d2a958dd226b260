package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/iliyamo/aura-journal/internal/utils" // token verification
)

// JWTAuth returns an Echo middleware that validates a Bearer access token and
// injects the token's identity claims into the request context.  The provided
// secret must match the one used by the auth service when issuing tokens.
// This middleware performs the cryptographic check only; it does not consult
// the session store, so it suits services that share the signing secret but
// not the auth database connection.  Handlers can read the authenticated
// identity via `c.Get("user_id")`, `c.Get("email")` and `c.Get("session_id")`.
func JWTAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            // A valid header starts with "Bearer " followed by the JWT.
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            // Signature, expiry and token_type checks all happen here.  Every
            // failure collapses into the same response so clients cannot
            // probe which check rejected the token.
            claims, err := utils.VerifyToken(secret, raw, utils.TokenAccess)
            if err != nil {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid token"})
            }

            c.Set("user_id", claims.UserID)
            c.Set("email", claims.Email)
            c.Set("session_id", claims.SessionID)
            return next(c)
        }
    }
}
