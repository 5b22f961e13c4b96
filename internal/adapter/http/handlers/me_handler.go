package handlers

import (
	"net/http"

	"m2_studio/internal/adapter/http/middleware"
	request "m2_studio/internal/adapter/http/dto/request"
	response "m2_studio/internal/adapter/http/dto/response"
	"m2_studio/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	usecase usecase.IProfileUseCase
}

func NewProfileHandler(uc usecase.IProfileUseCase) *ProfileHandler {
	return &ProfileHandler{usecase: uc}
}

// GetMe godoc
// @Summary   Signed-in profile and role
// @Tags      me
// @Produce   json
// @Success   200  {object}  response.MeResponse
// @Failure   401  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /me [get]
func (h *ProfileHandler) GetMe(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		abortWith(c, errUnauthorized)
		return
	}
	u, err := s.Profile()
	if err != nil {
		abortWith(c, errUnauthorized)
		return
	}
	c.JSON(http.StatusOK, response.FromUser(u))
}

// UpdateMe godoc
// @Summary   Edit name, phone and company
// @Tags      me
// @Accept    json
// @Produce   json
// @Param     payload  body      request.UpdateProfileRequest  true  "Profile fields"
// @Success   200      {object}  response.MeResponse
// @Failure   400      {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /me [patch]
func (h *ProfileHandler) UpdateMe(c *gin.Context) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		abortWith(c, errUnauthorized)
		return
	}
	var payload request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidPayload)
		return
	}
	u, err := h.usecase.Update(c.Request.Context(), s.Principal(), payload.ToInput())
	if err != nil {
		respondError(c, "profile", err)
		return
	}
	_ = s.SetProfile(u)
	c.JSON(http.StatusOK, response.FromUser(u))
}
