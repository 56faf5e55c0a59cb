package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireType restricts a route to the given account types. Runs after
// Auth, which puts "user_type" into context.
func RequireType(allowedTypes ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, t := range allowedTypes {
		allowed[t] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userType, _ := c.Get("user_type").(string)
			if _, ok := allowed[userType]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
