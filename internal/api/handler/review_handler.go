package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/api/metrics"
	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// ReviewHandler handles HTTP requests for reviews and rating aggregation.
// The reviewer's display name and avatar are resolved from their profile,
// never trusted from the request body.
type ReviewHandler struct {
	reviews ports.ReviewService
	auth    ports.AuthService
}

func NewReviewHandler(reviews ports.ReviewService, auth ports.AuthService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews, auth: auth}
}

type createReviewRequest struct {
	UserID  string `json:"user_id" validate:"required"`
	Rating  int    `json:"rating"  validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type userReviewsResponse struct {
	Reviews       []*domain.Review `json:"reviews"`
	AverageRating float64          `json:"average_rating"`
}

// Create handles POST /v1/reviews.
//
// @Summary      Submit a review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createReviewRequest  true  "Reviewed user, rating and comment"
// @Success      201   {object}  domain.Review
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	reviewer, err := h.auth.CurrentUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	review, err := h.reviews.AddReview(c.Request().Context(), ports.CreateReviewInput{
		UserID:         req.UserID,
		ReviewerID:     userID,
		ReviewerName:   reviewer.Username,
		ReviewerAvatar: reviewer.Avatar,
		Rating:         req.Rating,
		Comment:        req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsSubmittedTotal.WithLabelValues(strconv.Itoa(review.Rating)).Inc()
	return c.JSON(http.StatusCreated, review)
}

// ForUser handles GET /v1/users/:id/reviews.
//
// @Summary      List a user's reviews with their average rating
// @Tags         reviews
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  userReviewsResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/users/{id}/reviews [get]
func (h *ReviewHandler) ForUser(c echo.Context) error {
	reviewedID := c.Param("id")
	return c.JSON(http.StatusOK, userReviewsResponse{
		Reviews:       h.reviews.ReviewsFor(c.Request().Context(), reviewedID),
		AverageRating: h.reviews.AverageRating(c.Request().Context(), reviewedID),
	})
}
