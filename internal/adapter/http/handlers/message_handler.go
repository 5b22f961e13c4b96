package handlers

import (
	"net/http"

	request "m2_studio/internal/adapter/http/dto/request"
	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// MessageHandler serves the per-order chat thread.
type MessageHandler struct {
	usecase usecase.IMessageUseCase
}

func NewMessageHandler(uc usecase.IMessageUseCase) *MessageHandler {
	return &MessageHandler{usecase: uc}
}

func (h *MessageHandler) ListMessages(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID := c.Param("id")
	msgs, err := h.usecase.List(c.Request.Context(), p, orderID)
	if err != nil {
		respondError(c, "messages", err)
		return
	}
	unread, err := h.usecase.UnreadCount(c.Request.Context(), p, orderID)
	if err != nil {
		respondError(c, "messages", err)
		return
	}
	c.JSON(http.StatusOK, response.ThreadResponse{OrderID: orderID, Unread: unread, Messages: response.FromMessages(msgs)})
}

// SendMessage accepts JSON, or multipart with an optional "file" and a
// "message" form field.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID := c.Param("id")

	if c.ContentType() == "multipart/form-data" {
		file, f, ok := openUpload(c)
		if !ok {
			return
		}
		defer f.Close()

		msg, err := h.usecase.SendFile(c.Request.Context(), p, orderID, c.PostForm("message"), file)
		if err != nil {
			respondError(c, "messages", err)
			return
		}
		c.JSON(http.StatusCreated, response.FromMessage(msg))
		return
	}

	var payload request.SendMessageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	msg, err := h.usecase.Send(c.Request.Context(), p, orderID, payload.Message, payload.FileURL, payload.FileName)
	if err != nil {
		respondError(c, "messages", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromMessage(msg))
}

func (h *MessageHandler) MarkRead(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	n, err := h.usecase.MarkRead(c.Request.Context(), p, c.Param("id"))
	if err != nil {
		respondError(c, "messages", err)
		return
	}
	c.JSON(http.StatusOK, response.MarkedResponse{Marked: n})
}
