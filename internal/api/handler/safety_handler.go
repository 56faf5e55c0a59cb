package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/api/metrics"
	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// SafetyHandler handles HTTP requests for user reports and emergency
// contacts.
type SafetyHandler struct {
	safety ports.SafetyService
}

func NewSafetyHandler(safety ports.SafetyService) *SafetyHandler {
	return &SafetyHandler{safety: safety}
}

type reportUserRequest struct {
	UserID string `json:"user_id" validate:"required"`
	Reason string `json:"reason"  validate:"required"`
}

type reportStatusResponse struct {
	UserID   string `json:"user_id"`
	Reported bool   `json:"reported"`
}

type emergencyContactRequest struct {
	Name         string `json:"name"  validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Relationship string `json:"relationship"`
}

type contactListResponse struct {
	Data  []*domain.EmergencyContact `json:"data"`
	Count int                        `json:"count"`
}

// Report handles POST /v1/safety/reports.
//
// @Summary      Report a user
// @Tags         safety
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      reportUserRequest  true  "Reported user and reason"
// @Success      201   {object}  domain.ReportedUser
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/safety/reports [post]
func (h *SafetyHandler) Report(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req reportUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	report, err := h.safety.ReportUser(c.Request().Context(), userID, req.UserID, req.Reason)
	if err != nil {
		return err
	}

	metrics.ReportsFiledTotal.Inc()
	return c.JSON(http.StatusCreated, report)
}

// ReportStatus handles GET /v1/safety/reports/:userId.
//
// @Summary      Check whether a user has been reported
// @Tags         safety
// @Produce      json
// @Security     BearerAuth
// @Param        userId  path      string  true  "User id"
// @Success      200     {object}  reportStatusResponse
// @Failure      401     {object}  errorResponse
// @Router       /v1/safety/reports/{userId} [get]
func (h *SafetyHandler) ReportStatus(c echo.Context) error {
	targetID := c.Param("userId")
	return c.JSON(http.StatusOK, reportStatusResponse{
		UserID:   targetID,
		Reported: h.safety.IsReported(c.Request().Context(), targetID),
	})
}

// AddContact handles POST /v1/safety/contacts.
//
// @Summary      Add an emergency contact
// @Tags         safety
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      emergencyContactRequest  true  "Contact details"
// @Success      201   {object}  domain.EmergencyContact
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/safety/contacts [post]
func (h *SafetyHandler) AddContact(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req emergencyContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	contact, err := h.safety.AddEmergencyContact(c.Request().Context(), userID, ports.EmergencyContactInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contact)
}

// RemoveContact handles DELETE /v1/safety/contacts/:id. Removing a
// contact owned by someone else is a silent no-op.
//
// @Summary      Remove an emergency contact
// @Tags         safety
// @Security     BearerAuth
// @Param        id  path  string  true  "Contact id"
// @Success      204  "removed"
// @Failure      401  {object}  errorResponse
// @Router       /v1/safety/contacts/{id} [delete]
func (h *SafetyHandler) RemoveContact(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	h.safety.RemoveEmergencyContact(c.Request().Context(), userID, c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Contacts handles GET /v1/safety/contacts.
//
// @Summary      List my emergency contacts
// @Tags         safety
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  contactListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/safety/contacts [get]
func (h *SafetyHandler) Contacts(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	contacts := h.safety.EmergencyContacts(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, contactListResponse{Data: contacts, Count: len(contacts)})
}
