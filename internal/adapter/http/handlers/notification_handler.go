package handlers

import (
	"net/http"

	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	usecase usecase.INotificationUseCase
}

func NewNotificationHandler(uc usecase.INotificationUseCase) *NotificationHandler {
	return &NotificationHandler{usecase: uc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	ns, err := h.usecase.List(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, "notifications", err)
		return
	}
	c.JSON(http.StatusOK, response.FromNotifications(ns))
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	if err := h.usecase.MarkRead(c.Request.Context(), p.ID, c.Param("id")); err != nil {
		respondError(c, "notifications", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	n, err := h.usecase.MarkAllRead(c.Request.Context(), p.ID)
	if err != nil {
		respondError(c, "notifications", err)
		return
	}
	c.JSON(http.StatusOK, response.MarkedResponse{Marked: n})
}
