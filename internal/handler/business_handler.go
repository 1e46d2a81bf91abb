package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"festivo/internal/errors"
	"festivo/internal/model"
	"festivo/internal/service"
)

// BusinessHandler handles business profile endpoints.
type BusinessHandler struct {
	businessService service.BusinessService
	bookingService  service.BookingService
	reviewService   service.ReviewService
}

// NewBusinessHandler creates a new business handler.
func NewBusinessHandler(
	businessService service.BusinessService,
	bookingService service.BookingService,
	reviewService service.ReviewService,
) *BusinessHandler {
	return &BusinessHandler{
		businessService: businessService,
		bookingService:  bookingService,
		reviewService:   reviewService,
	}
}

// CreateBusinessRequest represents a business profile payload.
type CreateBusinessRequest struct {
	UserID       uint     `json:"user_id" validate:"required"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Category     string   `json:"category" validate:"required"`
	Location     string   `json:"location" validate:"required"`
	ContactEmail string   `json:"contact_email" validate:"required,email"`
	ContactPhone string   `json:"contact_phone"`
	Portfolio    []string `json:"portfolio"`
	Pricing      string   `json:"pricing"`
	Rating       int      `json:"rating" validate:"omitempty,min=1,max=5"`
}

// Create godoc
// @Summary Create a business profile
// @Tags businesses
// @Accept json
// @Produce json
// @Param request body CreateBusinessRequest true "Business profile"
// @Success 201 {object} model.Business
// @Failure 400 {object} errors.ErrorResponse
// @Router /businesses [post]
func (h *BusinessHandler) Create(c echo.Context) error {
	var req CreateBusinessRequest
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

	business := &model.Business{
		UserID:       req.UserID,
		Name:         req.Name,
		Description:  req.Description,
		Category:     req.Category,
		Location:     req.Location,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		Portfolio:    req.Portfolio,
		Pricing:      req.Pricing,
		Rating:       req.Rating,
	}

	created, err := h.businessService.CreateBusiness(c.Request().Context(), business)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// List godoc
// @Summary List businesses, optionally filtered by category
// @Tags businesses
// @Produce json
// @Param category query string false "Category filter (exact, case-insensitive)"
// @Success 200 {array} model.Business
// @Router /businesses [get]
func (h *BusinessHandler) List(c echo.Context) error {
	category := c.QueryParam("category")
	businesses, err := h.businessService.ListBusinesses(c.Request().Context(), category)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, businesses)
}

// Get godoc
// @Summary Get a business by ID
// @Tags businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} model.Business
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /businesses/{id} [get]
func (h *BusinessHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	business, err := h.businessService.GetBusiness(c.Request().Context(), id)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, business)
}

// ListByUser godoc
// @Summary List a user's business profiles
// @Tags businesses
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} model.Business
// @Failure 400 {object} errors.ErrorResponse
// @Router /users/{id}/businesses [get]
func (h *BusinessHandler) ListByUser(c echo.Context) error {
	userID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	businesses, err := h.businessService.ListUserBusinesses(c.Request().Context(), userID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, businesses)
}

// ListBookings godoc
// @Summary List a business's bookings
// @Tags businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {array} model.Booking
// @Failure 400 {object} errors.ErrorResponse
// @Router /businesses/{id}/bookings [get]
func (h *BusinessHandler) ListBookings(c echo.Context) error {
	businessID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	bookings, err := h.bookingService.BusinessBookings(c.Request().Context(), businessID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, bookings)
}

// ListReviews godoc
// @Summary List a business's reviews
// @Tags businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {array} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Router /businesses/{id}/reviews [get]
func (h *BusinessHandler) ListReviews(c echo.Context) error {
	businessID, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.reviewService.BusinessReviews(c.Request().Context(), businessID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, reviews)
}
