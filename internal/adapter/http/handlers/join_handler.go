package handlers

import (
	"net/http"

	request "m2_studio/internal/adapter/http/dto/request"
	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type JoinHandler struct {
	usecase usecase.IJoinUseCase
}

func NewJoinHandler(uc usecase.IJoinUseCase) *JoinHandler {
	return &JoinHandler{usecase: uc}
}

// SubmitApplication godoc
// @Summary  Apply to join the studio team
// @Tags     join
// @Accept   json
// @Produce  json
// @Param    payload  body      request.JoinRequest  true  "Application form"
// @Success  200      {object}  response.JoinResponse
// @Failure  400      {object}  pkg.HTTPError
// @Router   /join [post]
func (h *JoinHandler) SubmitApplication(c *gin.Context) {
	var payload request.JoinRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	a, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, "join", err)
		return
	}
	c.JSON(http.StatusOK, response.JoinResponse{Success: true, Message: "Application submitted successfully!", ID: a.ID})
}
