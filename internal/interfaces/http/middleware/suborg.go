package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/courierops/backend/internal/infrastructure/logger"
)

// Keys used to store sub-org information in gin.Context
const (
	SubOrgIDKey     = "sub_org_id"
	SubOrgHeaderKey = "X-Sub-Org-ID"
)

// SubOrgMiddlewareConfig holds configuration for sub-org scoping middleware
type SubOrgMiddlewareConfig struct {
	// SkipPaths are paths that don't require a sub-org scope
	SkipPaths []string
	// Required determines whether requests without a sub-org are rejected
	Required bool
	// Logger for middleware logging
	Logger *zap.Logger
}

// DefaultSubOrgConfig returns the default sub-org middleware configuration
func DefaultSubOrgConfig() SubOrgMiddlewareConfig {
	return SubOrgMiddlewareConfig{
		SkipPaths: []string{"/health", "/api/v1/system"},
		Required:  true,
	}
}

// SubOrgMiddleware extracts the sub-org scope from the X-Sub-Org-ID header
func SubOrgMiddleware() gin.HandlerFunc {
	return SubOrgMiddlewareWithConfig(DefaultSubOrgConfig())
}

// SubOrgMiddlewareWithConfig returns sub-org middleware with custom configuration
func SubOrgMiddlewareWithConfig(cfg SubOrgMiddlewareConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skipPath := range cfg.SkipPaths {
			if path == skipPath || strings.HasPrefix(path, skipPath+"/") {
				c.Next()
				return
			}
		}

		subOrgID := c.GetHeader(SubOrgHeaderKey)

		if subOrgID != "" {
			if _, err := uuid.Parse(subOrgID); err != nil {
				respondBadRequest(c, "Invalid sub-org ID format")
				return
			}
		}

		if subOrgID == "" && cfg.Required {
			respondBadRequest(c, "Sub-org identification required")
			return
		}

		if subOrgID != "" {
			c.Set(SubOrgIDKey, subOrgID)

			// Propagate to the request context so the service layer logs
			// carry the sub-org scope.
			ctx := c.Request.Context()
			log := logger.FromContext(ctx)
			ctx, _ = logger.WithSubOrgID(ctx, log, subOrgID)
			c.Request = c.Request.WithContext(ctx)

			if cfg.Logger != nil {
				cfg.Logger.Debug("Sub-org identified", zap.String("sub_org_id", subOrgID))
			}
		}

		c.Next()
	}
}

// respondBadRequest rejects the request before it reaches a handler
func respondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "ERR_BAD_REQUEST",
			"message": message,
		},
	})
}

// GetSubOrgID retrieves the sub-org ID from gin.Context
func GetSubOrgID(c *gin.Context) string {
	if subOrgID, exists := c.Get(SubOrgIDKey); exists {
		if id, ok := subOrgID.(string); ok {
			return id
		}
	}
	return ""
}

// GetSubOrgUUID retrieves the sub-org ID as a UUID from gin.Context
func GetSubOrgUUID(c *gin.Context) (uuid.UUID, error) {
	subOrgID := GetSubOrgID(c)
	if subOrgID == "" {
		return uuid.Nil, nil
	}
	return uuid.Parse(subOrgID)
}

// OptionalSubOrgMiddleware creates middleware that doesn't require a sub-org
func OptionalSubOrgMiddleware() gin.HandlerFunc {
	cfg := DefaultSubOrgConfig()
	cfg.Required = false
	return SubOrgMiddlewareWithConfig(cfg)
}
