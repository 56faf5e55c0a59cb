package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/api/metrics"
	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type signupRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required"`
	Type     string `json:"type"     validate:"required,oneof=student employer"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Type     string `json:"type"     validate:"required,oneof=student employer"`
}

type updateProfileRequest struct {
	Username *string `json:"username"`
	Avatar   *string `json:"avatar"`
	Bio      *string `json:"bio"`
}

type sessionResponse struct {
	Token string          `json:"token,omitempty"`
	User  *domain.Profile `json:"user,omitempty"`
}

// Signup creates a new account and returns a session.
//
// @Summary      Sign up
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := h.authService.Signup(c.Request().Context(), ports.SignupInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Type:     domain.UserType(req.Type),
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, sessionResponse{Token: session.Token, User: session.User})
}

// Login authenticates an account as the requested type and returns a session.
//
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	session, err := h.authService.Login(c.Request().Context(), req.Email, req.Password, domain.UserType(req.Type))
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			metrics.AuthFailuresTotal.WithLabelValues("bad_credentials").Inc()
		case domain.ErrTypeMismatch:
			metrics.AuthFailuresTotal.WithLabelValues("type_mismatch").Inc()
		}
		return err
	}

	return c.JSON(http.StatusOK, sessionResponse{Token: session.Token, User: session.User})
}

// Logout revokes the presented token for its remaining lifetime.
//
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      204  "token revoked"
// @Failure      401  {object}  errorResponse
// @Router       /v1/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	if err := h.authService.Logout(c.Request().Context(), token); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated account's profile.
//
// @Summary      Current user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Profile
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	profile, err := h.authService.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// UpdateProfile merges the provided fields into the profile.
//
// @Summary      Update profile
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to update (absent fields are left untouched)"
// @Success      200   {object}  domain.Profile
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /v1/auth/profile [patch]
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	profile, err := h.authService.UpdateProfile(c.Request().Context(), userID, ports.ProfileUpdateInput{
		Username: req.Username,
		Avatar:   req.Avatar,
		Bio:      req.Bio,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, profile)
}

// bearerToken extracts the raw token from the Authorization header, or ""
// when the header is absent or malformed.
func bearerToken(c echo.Context) string {
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return parts[1]
}
