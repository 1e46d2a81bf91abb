package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"festivo/internal/errors"
	"festivo/internal/model"
	"festivo/internal/service"
)

// WaitlistHandler handles waitlist endpoints.
type WaitlistHandler struct {
	waitlistService service.WaitlistService
}

// NewWaitlistHandler creates a new waitlist handler.
func NewWaitlistHandler(waitlistService service.WaitlistService) *WaitlistHandler {
	return &WaitlistHandler{waitlistService: waitlistService}
}

// JoinWaitlistRequest represents a waitlist signup.
type JoinWaitlistRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	UserType        string `json:"user_type" validate:"required,oneof=customer provider both"`
	ReceivesUpdates *bool  `json:"receives_updates"` // defaults to true when omitted
}

// Join godoc
// @Summary Join the pre-launch waitlist
// @Tags waitlist
// @Accept json
// @Produce json
// @Param request body JoinWaitlistRequest true "Waitlist signup"
// @Success 201 {object} model.WaitlistEntry
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /waitlist [post]
func (h *WaitlistHandler) Join(c echo.Context) error {
	var req JoinWaitlistRequest
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

	receivesUpdates := true
	if req.ReceivesUpdates != nil {
		receivesUpdates = *req.ReceivesUpdates
	}

	entry := &model.WaitlistEntry{
		FullName:        req.FullName,
		Email:           req.Email,
		UserType:        model.UserType(req.UserType),
		ReceivesUpdates: receivesUpdates,
	}

	created, err := h.waitlistService.Join(c.Request().Context(), entry)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}
