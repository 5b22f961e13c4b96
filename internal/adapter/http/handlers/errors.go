package handlers

import (
	"errors"
	"log"
	"net/http"

	"m2_studio/internal/adapter/http/middleware"
	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase"
	"m2_studio/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Sign in to continue", http.StatusUnauthorized)
)

func mapError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	switch {
	case errors.As(err, &ve):
		return pkg.NewDomainError("VALIDATION_ERROR", ve.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrUnknownOrderStatus):
		return pkg.NewDomainError("VALIDATION_ERROR", "status: unknown value", err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrStatusConflict):
		return pkg.NewDomainError("STATUS_CONFLICT", "The order was updated by someone else, reload and retry", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderLocked):
		return pkg.NewDomainError("ORDER_LOCKED", "This order can no longer be changed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrReviewNotAllowed):
		return pkg.NewDomainError("REVIEW_NOT_ALLOWED", "Only delivered orders can be reviewed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrReviewAlreadyExists):
		return pkg.NewDomainError("REVIEW_ALREADY_EXISTS", "This order has already been reviewed", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainError("ORDER_NOT_FOUND", "Order not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrReviewNotFound):
		return pkg.NewDomainError("REVIEW_NOT_FOUND", "Review not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrNotificationNotFound):
		return pkg.NewDomainError("NOTIFICATION_NOT_FOUND", "Notification not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainError("USER_NOT_FOUND", "User not found", err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainError("FORBIDDEN", "You do not have access to this order", err, http.StatusForbidden)
	case errors.Is(err, usecase.ErrStorage):
		return pkg.NewDomainError("STORAGE_ERROR", "Storage is unavailable, try again", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func respondError(c *gin.Context, area string, err error) {
	appErr := mapError(err)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Printf("[%s][handler] %s %s failed err=%v", area, c.Request.Method, c.FullPath(), err)
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// principal returns the signed-in caller. Routes behind RequireAuth always
// have one; ok is false only on misconfigured routes.
func principal(c *gin.Context) (entities.Principal, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		abortWith(c, errUnauthorized)
		return entities.Principal{}, false
	}
	return s.Principal(), true
}
