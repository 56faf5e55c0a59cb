package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/charcroft19/4hire3/internal/api/metrics"
	"github.com/charcroft19/4hire3/internal/core/domain"
	"github.com/charcroft19/4hire3/internal/core/ports"
)

// MessageHandler handles HTTP requests for chat messages and the
// conversation index. Outgoing message text passes the moderation filter
// before it is stored.
type MessageHandler struct {
	messages ports.MessageService
	safety   ports.SafetyService
}

func NewMessageHandler(messages ports.MessageService, safety ports.SafetyService) *MessageHandler {
	return &MessageHandler{messages: messages, safety: safety}
}

type sendMessageRequest struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content"     validate:"required"`
}

type conversationListResponse struct {
	Data  []*domain.Conversation `json:"data"`
	Count int                    `json:"count"`
}

type messageListResponse struct {
	Data  []*domain.Message `json:"data"`
	Count int               `json:"count"`
}

// Send handles POST /v1/messages.
//
// @Summary      Send a chat message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Recipient and content"
// @Success      201   {object}  domain.Message
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	content := h.safety.FilterContent(req.Content)
	msg, err := h.messages.Send(c.Request().Context(), userID, req.ReceiverID, content)
	if err != nil {
		return err
	}

	metrics.MessagesSentTotal.Inc()
	return c.JSON(http.StatusCreated, msg)
}

// MarkRead handles POST /v1/messages/:id/read.
//
// @Summary      Mark a message as read
// @Tags         messages
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      204  "marked"
// @Failure      401  {object}  errorResponse
// @Router       /v1/messages/{id}/read [post]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	if _, _, err := ctxClaims(c); err != nil {
		return err
	}
	h.messages.MarkAsRead(c.Request().Context(), c.Param("id"))
	return c.NoContent(http.StatusNoContent)
}

// Conversations handles GET /v1/conversations.
//
// @Summary      List my conversations
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  conversationListResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/conversations [get]
func (h *MessageHandler) Conversations(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}
	convs := h.messages.Conversations(c.Request().Context(), userID)
	return c.JSON(http.StatusOK, conversationListResponse{Data: convs, Count: len(convs)})
}

// Messages handles GET /v1/conversations/:id/messages. Only the two
// participants encoded in the conversation id may read it.
//
// @Summary      List messages in a conversation
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Conversation id"
// @Success      200  {object}  messageListResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /v1/conversations/{id}/messages [get]
func (h *MessageHandler) Messages(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	conversationID := c.Param("id")
	a, b := domain.SplitConversationID(conversationID)
	if userID != a && userID != b {
		return domain.ErrForbidden
	}

	msgs := h.messages.MessagesIn(c.Request().Context(), conversationID)
	return c.JSON(http.StatusOK, messageListResponse{Data: msgs, Count: len(msgs)})
}
