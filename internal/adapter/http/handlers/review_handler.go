package handlers

import (
	"net/http"
	"strconv"

	request "m2_studio/internal/adapter/http/dto/request"
	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	usecase usecase.IReviewUseCase
}

func NewReviewHandler(uc usecase.IReviewUseCase) *ReviewHandler {
	return &ReviewHandler{usecase: uc}
}

// SubmitReview godoc
// @Summary   Review a delivered order
// @Tags      reviews
// @Accept    json
// @Produce   json
// @Param     id       path      string                 true  "Order ID"
// @Param     payload  body      request.ReviewRequest  true  "Rating 1-5 and text"
// @Success   201      {object}  response.ReviewResponse
// @Failure   409      {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /orders/{id}/review [post]
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var payload request.ReviewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	rv, err := h.usecase.Submit(c.Request.Context(), p, c.Param("id"), payload.Rating, payload.Review)
	if err != nil {
		respondError(c, "reviews", err)
		return
	}
	c.JSON(http.StatusCreated, response.FromReview(rv))
}

func (h *ReviewHandler) GetReview(c *gin.Context) {
	if _, ok := principal(c); !ok {
		return
	}
	rv, err := h.usecase.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, "reviews", err)
		return
	}
	c.JSON(http.StatusOK, response.FromReview(rv))
}

// ListRecent is public; it feeds the testimonials section.
func (h *ReviewHandler) ListRecent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	rs, err := h.usecase.ListRecent(c.Request.Context(), limit)
	if err != nil {
		respondError(c, "reviews", err)
		return
	}
	c.JSON(http.StatusOK, response.FromReviews(rs))
}
