package handlers

import (
	"log"
	"net/http"

	request "m2_studio/internal/adapter/http/dto/request"
	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/adapter/http/middleware"
	"m2_studio/internal/domain/dashboard"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

// OrderHandler serves the client side of the order lifecycle.
type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// SubmitOrder godoc
// @Summary      Submit an order
// @Description  Public order form. A bearer token links the order to the caller.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        order  body      request.CreateOrderRequest  true  "Order form"
// @Success      201    {object}  response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Failure      503    {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	var payload request.CreateOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}

	userID := ""
	if s, ok := middleware.SessionFrom(c); ok {
		userID = s.UID
	}

	order, err := h.usecase.Submit(c.Request.Context(), payload.ToInput(userID))
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	log.Printf("[orders][handler] submit success order_id=%s", order.ID)
	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// ListMyOrders godoc
// @Summary   List the caller's orders
// @Tags      orders
// @Produce   json
// @Param     status  query     string  false  "all|pending|working|delivered|cancelled"
// @Success   200     {object}  response.OrderListResponse
// @Security  Bearer
// @Router    /orders/me [get]
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	filter := c.Query("status")
	orders, err := h.usecase.ListForUser(c.Request.Context(), p.ID, filter)
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	c.JSON(http.StatusOK, response.NewOrderList(filter, orders))
}

// MyStats returns the client dashboard counters.
func (h *OrderHandler) MyStats(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orders, err := h.usecase.ListForUser(c.Request.Context(), p.ID, dashboard.FilterAll)
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	c.JSON(http.StatusOK, dashboard.Aggregate(orders))
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// GetTimeline godoc
// @Summary   Order status timeline
// @Tags      orders
// @Produce   json
// @Param     id   path      string  true  "Order ID"
// @Success   200  {object}  response.TimelineResponse
// @Security  Bearer
// @Router    /orders/{id}/timeline [get]
func (h *OrderHandler) GetTimeline(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	c.JSON(http.StatusOK, response.FromTimeline(order))
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	order, err := h.usecase.Cancel(c.Request.Context(), c.Param("id"), p)
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	log.Printf("[orders][handler] cancel success order_id=%s by=%s", order.ID, p.ID)
	c.JSON(http.StatusOK, response.FromOrder(order))
}

// UploadClientFile accepts either a multipart "file" or a JSON file_url.
func (h *OrderHandler) UploadClientFile(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID := c.Param("id")

	if c.ContentType() == "application/json" {
		var payload request.AttachFileRequest
		if err := c.ShouldBindJSON(&payload); err != nil {
			abortWith(c, errInvalidPayload)
			return
		}
		order, err := h.usecase.AttachClientFile(c.Request.Context(), orderID, p.ID, payload.ResolveURL())
		if err != nil {
			respondError(c, "orders", err)
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

	order, err := h.usecase.StoreClientFile(c.Request.Context(), orderID, p.ID, file)
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	c.JSON(http.StatusOK, response.FromOrder(order))
}

func (h *OrderHandler) GetDownloads(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	orderID := c.Param("id")
	links, err := h.usecase.DownloadLinks(c.Request.Context(), orderID, p)
	if err != nil {
		respondError(c, "orders", err)
		return
	}
	c.JSON(http.StatusOK, response.DownloadsResponse{OrderID: orderID, URLs: links})
}
