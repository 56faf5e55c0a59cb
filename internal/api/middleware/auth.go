package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/api/metrics"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// Auth validates the JWT, rejects revoked tokens, and injects the session
// claims into context.
func Auth(jwtSecret string, denylist ports.TokenDenylist) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil || !tkn.Valid {
				metrics.AuthFailuresTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			if tokenID, _ := claims["jti"].(string); tokenID != "" && denylist != nil {
				revoked, err := denylist.IsRevoked(c.Request().Context(), tokenID)
				if err == nil && revoked {
					metrics.AuthFailuresTotal.WithLabelValues("revoked_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token revoked")
				}
			}

			c.Set("user_id", claims["sub"])
			c.Set("email", claims["email"])
			c.Set("user_type", claims["type"])

			return next(c)
		}
	}
}
