package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/courierops/backend/internal/infrastructure/persistence"
)

// SystemHandler handles health and system information endpoints
type SystemHandler struct {
	BaseHandler
	db        *persistence.Database
	version   string
	startTime time.Time
}

// NewSystemHandler creates a new SystemHandler
func NewSystemHandler(db *persistence.Database, version string) *SystemHandler {
	return &SystemHandler{
		db:        db,
		version:   version,
		startTime: time.Now(),
	}
}

// SystemInfoResponse describes the running service
type SystemInfoResponse struct {
	Name     string             `json:"name"`
	Version  string             `json:"version"`
	Uptime   string             `json:"uptime"`
	Database *DatabasePoolStats `json:"database,omitempty"`
}

// DatabasePoolStats reports connection pool usage
type DatabasePoolStats struct {
	MaxOpenConnections int   `json:"max_open_connections"`
	OpenConnections    int   `json:"open_connections"`
	InUse              int   `json:"in_use"`
	Idle               int   `json:"idle"`
	WaitCount          int64 `json:"wait_count"`
}

// HealthResponse reports service and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// RegisterRoutes registers system routes
func (h *SystemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	system := rg.Group("/system")
	{
		system.GET("/info", h.Info)
		system.GET("/ping", h.Ping)
	}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the service and its database are reachable
// @Tags system
// @Produce json
// @Success 200 {object} handler.HealthResponse
// @Failure 503 {object} handler.HealthResponse
// @Router /health [get]
func (h *SystemHandler) Health(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Database: "ok"}
	status := http.StatusOK

	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			resp.Status = "degraded"
			resp.Database = "unreachable"
			status = http.StatusServiceUnavailable
		}
	}

	c.JSON(status, resp)
}

// Info godoc
// @Summary System information
// @Tags system
// @Produce json
// @Success 200 {object} dto.Response{data=handler.SystemInfoResponse}
// @Router /system/info [get]
func (h *SystemHandler) Info(c *gin.Context) {
	info := SystemInfoResponse{
		Name:    "courierops-backend",
		Version: h.version,
		Uptime:  time.Since(h.startTime).Round(time.Second).String(),
	}

	if h.db != nil {
		if stats, err := h.db.Stats(); err == nil {
			info.Database = &DatabasePoolStats{
				MaxOpenConnections: stats.MaxOpenConnections,
				OpenConnections:    stats.OpenConnections,
				InUse:              stats.InUse,
				Idle:               stats.Idle,
				WaitCount:          stats.WaitCount,
			}
		}
	}

	h.Success(c, info)
}

// Ping godoc
// @Summary Ping
// @Tags system
// @Produce json
// @Success 200 {object} dto.Response
// @Router /system/ping [get]
func (h *SystemHandler) Ping(c *gin.Context) {
	h.Success(c, gin.H{"message": "pong"})
}
