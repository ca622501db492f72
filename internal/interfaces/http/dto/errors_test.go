package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		code string
		want int
	}{
		{"bad request", ErrCodeBadRequest, http.StatusBadRequest},
		{"validation", ErrCodeValidation, http.StatusBadRequest},
		{"unauthorized", ErrCodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", ErrCodeForbidden, http.StatusForbidden},
		{"not found", ErrCodeNotFound, http.StatusNotFound},
		{"conflict", ErrCodeConflict, http.StatusConflict},
		{"internal", ErrCodeInternal, http.StatusInternalServerError},
		{"unavailable", ErrCodeUnavailable, http.StatusServiceUnavailable},
		{"unknown defaults to 500", "ERR_SOMETHING_ELSE", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	t.Run("maps domain codes", func(t *testing.T) {
		assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("NOT_FOUND"))
		assert.Equal(t, ErrCodeValidation, NormalizeErrorCode("INVALID_DATE_RANGE"))
		assert.Equal(t, ErrCodeBadRequest, NormalizeErrorCode("MISSING_SUB_ORG"))
		assert.Equal(t, ErrCodeConflict, NormalizeErrorCode("INVALID_STATE"))
	})

	t.Run("passes API codes through", func(t *testing.T) {
		assert.Equal(t, ErrCodeForbidden, NormalizeErrorCode(ErrCodeForbidden))
	})

	t.Run("unknown codes collapse to internal", func(t *testing.T) {
		assert.Equal(t, ErrCodeInternal, NormalizeErrorCode("SOMETHING_NOBODY_MAPPED"))
	})
}

func TestNewErrorResponseWithRequestID(t *testing.T) {
	resp := NewErrorResponseWithRequestID(ErrCodeNotFound, "courier not found", "req-123")

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeNotFound, resp.Error.Code)
	assert.Equal(t, "courier not found", resp.Error.Message)
	assert.Equal(t, "req-123", resp.Error.RequestID)
	assert.Nil(t, resp.Data)
}

func TestNewValidationErrorResponse(t *testing.T) {
	details := []ValidationDetail{
		{Field: "start_date", Message: "start_date is required"},
	}
	resp := NewValidationErrorResponse("Validation failed", "req-456", details)

	assert.False(t, resp.Success)
	assert.Equal(t, ErrCodeValidation, resp.Error.Code)
	assert.Equal(t, "req-456", resp.Error.RequestID)
	assert.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "start_date", resp.Error.Details[0].Field)
}
