package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"festivo/internal/errors"
	"festivo/internal/model"
	"festivo/internal/service"
)

// ReviewHandler handles review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReviewRequest represents a review payload.
type CreateReviewRequest struct {
	BookingID  uint   `json:"booking_id" validate:"required"`
	CustomerID uint   `json:"customer_id" validate:"required"`
	BusinessID uint   `json:"business_id" validate:"required"`
	Rating     int    `json:"rating" validate:"required,min=1,max=5"`
	Comment    string `json:"comment"`
}

// Create godoc
// @Summary Create a review
// @Tags reviews
// @Accept json
// @Produce json
// @Param request body CreateReviewRequest true "Review"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "invalid request body",
			Code:  "INVALID_REQUEST",
		})
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "VALIDATION_ERROR",
		})
	}

	review := &model.Review{
		BookingID:  req.BookingID,
		CustomerID: req.CustomerID,
		BusinessID: req.BusinessID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	created, err := h.reviewService.CreateReview(c.Request().Context(), review)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}
