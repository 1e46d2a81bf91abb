package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"festivo/internal/errors"
	"festivo/internal/model"
	"festivo/internal/service"
)

// MessageHandler handles messaging endpoints.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a new message handler.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// SendMessageRequest represents a message payload.
type SendMessageRequest struct {
	BookingID  uint   `json:"booking_id"`
	SenderID   uint   `json:"sender_id" validate:"required"`
	ReceiverID uint   `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required"`
}

// Send godoc
// @Summary Send a message
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageRequest true "Message"
// @Success 201 {object} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Router /messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	var req SendMessageRequest
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

	message := &model.Message{
		BookingID:  req.BookingID,
		SenderID:   req.SenderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
	}

	created, err := h.messageService.SendMessage(c.Request().Context(), message)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusCreated, created)
}

// Conversation godoc
// @Summary Get the conversation between two users
// @Tags messages
// @Produce json
// @Param userId path int true "User ID"
// @Param otherUserId path int true "Other user ID"
// @Success 200 {array} model.Message
// @Failure 400 {object} errors.ErrorResponse
// @Router /messages/{userId}/{otherUserId} [get]
func (h *MessageHandler) Conversation(c echo.Context) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return err
	}
	otherUserID, err := parseIDParam(c, "otherUserId")
	if err != nil {
		return err
	}

	messages, err := h.messageService.GetConversation(c.Request().Context(), userID, otherUserID)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return c.JSON(http.StatusOK, messages)
}
