package handlers

import (
	"errors"
	"net/http"

	request "pedezap/internal/adapter/http/dto/request"
	response "pedezap/internal/adapter/http/dto/response"
	"pedezap/internal/usecase"
	"pedezap/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidInboundPayload = pkg.NewDomainErrorSimple("INVALID_MESSAGE_INPUT", "Invalid inbound message payload", http.StatusBadRequest)

// BotHandler receives inbound customer messages from the messaging-channel
// connector. One webhook call per message; the reply is sent back through the
// channel gateway and echoed in the response body.

type BotHandler struct {
	usecase usecase.IBotUseCase
}

func NewBotHandler(uc usecase.IBotUseCase) *BotHandler {
	return &BotHandler{usecase: uc}
}

// HandleMessage godoc
// @Summary  Process one inbound customer message
// @Tags     bot
// @Accept   json
// @Produce  json
// @Param    message body request.InboundMessageRequest true "Inbound message"
// @Success  200 {object} response.BotReplyResponse
// @Router   /bot/messages [post]
func (h *BotHandler) HandleMessage(c *gin.Context) {
	var payload request.InboundMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInboundPayload.HTTPStatus, errInvalidInboundPayload.ToHTTPError())
		return
	}

	phone := payload.ResolvePhone()
	if phone == "" {
		c.JSON(errInvalidInboundPayload.HTTPStatus, errInvalidInboundPayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.HandleInbound(c.Request.Context(), phone, payload.Text, payload.ImageURL)
	if err != nil {
		appErr := mapBotError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.BotReplyResponse{Reply: reply})
}

func mapBotError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPhone):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		// Collaborator failure (catalog, gateway, order store): the turn did
		// not complete, let the connector retry.
		return pkg.NewDomainError("UPSTREAM_ERROR", "Failed processing the message", err, http.StatusBadGateway)
	}
}
