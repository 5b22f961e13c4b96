package handlers

import (
	"log"
	"net/http"

	request "m2_studio/internal/adapter/http/dto/request"
	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/domain/dashboard"
	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves the studio dashboard. Routes are mounted behind
// RequireAdmin.
type AdminHandler struct {
	usecase usecase.IOrderUseCase
}

func NewAdminHandler(uc usecase.IOrderUseCase) *AdminHandler {
	return &AdminHandler{usecase: uc}
}

func (h *AdminHandler) ListOrders(c *gin.Context) {
	filter := c.Query("status")
	orders, err := h.usecase.ListAll(c.Request.Context(), filter)
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.NewOrderList(filter, orders))
}

func (h *AdminHandler) Stats(c *gin.Context) {
	orders, err := h.usecase.ListAll(c.Request.Context(), dashboard.FilterAll)
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, dashboard.Aggregate(orders))
}

// UpdateStatus godoc
// @Summary   Move an order to a new status
// @Tags      admin
// @Accept    json
// @Produce   json
// @Param     id       path      string                       true  "Order ID"
// @Param     payload  body      request.UpdateStatusRequest  true  "Target status"
// @Success   200      {object}  response.OrderResponse
// @Failure   400      {object}  pkg.HTTPError
// @Failure   409      {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.UpdateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	status, err := entities.ParseOrderStatus(payload.Status)
	if err != nil {
		respondError(c, "admin", err)
		return
	}

	orderID := c.Param("id")
	order, err := h.usecase.UpdateStatus(c.Request.Context(), orderID, status, p.Actor(), payload.Note)
	if err != nil {
		log.Printf("[admin][handler] status update failed order_id=%s to=%s err=%v", orderID, status, err)
		respondError(c, "admin", err)
		return
	}
	log.Printf("[admin][handler] status update success order_id=%s status=%s", order.ID, order.Status)
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *AdminHandler) UpdatePrice(c *gin.Context) {
	var payload request.UpdatePriceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	order, err := h.usecase.SetPrice(c.Request.Context(), c.Param("id"), payload.Price)
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UploadDeliverable stores a multipart file, or records a JSON file_url, as a
// deliverable. Marking the order delivered is a separate status update.
func (h *AdminHandler) UploadDeliverable(c *gin.Context) {
	orderID := c.Param("id")

	if c.ContentType() == "application/json" {
		var payload request.AttachFileRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
		order, err := h.usecase.UploadDeliverable(c.Request.Context(), orderID, payload.ResolveURL())
		if err != nil {
			respondError(c, "admin", err)
			return
		}
		c.JSON(http.StatusOK, response.FromOrder(order))
		return
	}

	file, f, ok := openUpload(c)
	if !ok {
		return
	}
	defer f.Close()

	order, err := h.usecase.StoreDeliverable(c.Request.Context(), orderID, file)
	if err != nil {
		respondError(c, "admin", err)
		return
	}
	log.Printf("[admin][handler] deliverable stored order_id=%s files=%d", order.ID, len(order.DownloadURLs))
	c.JSON(http.StatusOK, response.FromOrder(order))
}
