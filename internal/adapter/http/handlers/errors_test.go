package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"m2_studio/internal/domain/entities"
	"m2_studio/internal/usecase"
)

func TestMapError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", &usecase.ValidationError{Field: "email", Reason: "required"}, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"unknown status", entities.ErrUnknownOrderStatus, http.StatusBadRequest, "VALIDATION_ERROR"},
		{"invalid transition", fmt.Errorf("%w: delivered -> pending", entities.ErrInvalidTransition), http.StatusConflict, "INVALID_TRANSITION"},
		{"status conflict", usecase.ErrStatusConflict, http.StatusConflict, "STATUS_CONFLICT"},
		{"locked", usecase.ErrOrderLocked, http.StatusConflict, "ORDER_LOCKED"},
		{"review not allowed", usecase.ErrReviewNotAllowed, http.StatusConflict, "REVIEW_NOT_ALLOWED"},
		{"review exists", usecase.ErrReviewAlreadyExists, http.StatusConflict, "REVIEW_ALREADY_EXISTS"},
		{"order not found", usecase.ErrOrderNotFound, http.StatusNotFound, "ORDER_NOT_FOUND"},
		{"notification not found", usecase.ErrNotificationNotFound, http.StatusNotFound, "NOTIFICATION_NOT_FOUND"},
		{"user not found", usecase.ErrUserNotFound, http.StatusNotFound, "USER_NOT_FOUND"},
		{"forbidden", usecase.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{"storage", &usecase.StorageError{Op: "put", Err: errors.New("timeout")}, http.StatusServiceUnavailable, "STORAGE_ERROR"},
		{"other", errors.New("boom"), http.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mapError(tc.err)
			if got.HTTPStatus != tc.status || got.Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, got.HTTPStatus, got.Code)
			}
		})
	}

	if msg := mapError(&usecase.ValidationError{Field: "whatsapp", Reason: "required"}).Message; msg != "whatsapp: required" {
		t.Fatalf("validation message should name the field, got %q", msg)
	}
}
