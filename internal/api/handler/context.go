package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxClaims extracts the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: user_id must be
// non-empty (presence proves the middleware ran).
func ctxClaims(c echo.Context) (userID, userType string, err error) {
	userID, _ = c.Get("user_id").(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	userType, _ = c.Get("user_type").(string)
	return userID, userType, nil
}
