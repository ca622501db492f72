package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/courierops/backend/internal/domain/shared"
	"github.com/courierops/backend/internal/interfaces/http/dto"
)

// SubOrgHeaderKey identifies the sub-organization a request operates on
const SubOrgHeaderKey = "X-Sub-Org-ID"

// BaseHandler provides common functionality shared by all handlers
type BaseHandler struct{}

// getRequestID extracts the request ID placed in the context by middleware,
// falling back to the inbound header.
func (h *BaseHandler) getRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// getSubOrgID extracts and validates the sub-org scope of the request.
// The middleware puts it in the context; the header is the fallback so
// handlers also work without the middleware installed (tests, tools).
func (h *BaseHandler) getSubOrgID(c *gin.Context) (uuid.UUID, error) {
	raw := ""
	if v, exists := c.Get("sub_org_id"); exists {
		if s, ok := v.(string); ok {
			raw = s
		}
	}
	if raw == "" {
		raw = c.GetHeader(SubOrgHeaderKey)
	}
	if raw == "" {
		return uuid.Nil, shared.ErrMissingSubOrg
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, shared.ErrMissingSubOrg
	}
	return id, nil
}

// Success sends a 200 response with the standard envelope
func (h *BaseHandler) Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Error sends an error response with the given API error code
func (h *BaseHandler) Error(c *gin.Context, code, message string) {
	c.JSON(dto.GetHTTPStatus(code), dto.NewErrorResponseWithRequestID(code, message, h.getRequestID(c)))
}

// HandleError maps an error from the application layer onto an HTTP response.
// Domain errors keep their message; everything else is reported as internal
// without leaking details to the client.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		h.Error(c, dto.NormalizeErrorCode(domainErr.Code), domainErr.Message)
		return
	}
	h.Error(c, dto.ErrCodeInternal, "An internal error occurred")
}

// HandleBindingError maps a gin binding failure onto a validation response
// with per-field details when the underlying error carries them.
func (h *BaseHandler) HandleBindingError(c *gin.Context, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		details := make([]dto.ValidationDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, dto.ValidationDetail{
				Field:   strings.ToLower(fieldErr.Field()),
				Message: bindingErrorMessage(fieldErr),
			})
		}
		c.JSON(http.StatusBadRequest, dto.NewValidationErrorResponse(
			"Validation failed", h.getRequestID(c), details))
		return
	}
	h.Error(c, dto.ErrCodeBadRequest, err.Error())
}

func bindingErrorMessage(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fieldErr.Param()
	case "max":
		return "must be at most " + fieldErr.Param()
	default:
		return "is invalid"
	}
}
