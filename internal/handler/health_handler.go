package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"usersvc/internal/model"
	"usersvc/internal/service"
)

// version is reported by the liveness endpoint.
const version = "1.0.0"

// HealthHandler bundles the health endpoints.
type HealthHandler struct {
	healthService service.HealthService
	userService   service.UserService
}

// NewHealthHandler creates a handler layer.
func NewHealthHandler(healthService service.HealthService, userService service.UserService) *HealthHandler {
	return &HealthHandler{healthService: healthService, userService: userService}
}

// HealthResponse represents a successful liveness probe.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database"`
	Version   string    `json:"version"`
}

// APIHealthResponse represents a successful detailed health probe.
type APIHealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	UserCount int64     `json:"user_count"`
	Timestamp time.Time `json:"timestamp"`
}

// UnhealthyResponse is returned when the database cannot be reached.
type UnhealthyResponse struct {
	Status    string     `json:"status"`
	Error     string     `json:"error"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Health godoc
// @Summary Liveness probe
// @Description Verifies database connectivity and records a health check row.
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} UnhealthyResponse
// @Router /health [get]
func (h *HealthHandler) Health(c echo.Context) error {
	check, err := h.healthService.Check(c.Request().Context())
	if err != nil {
		now := time.Now().UTC()
		return c.JSON(http.StatusServiceUnavailable, UnhealthyResponse{
			Status:    model.StatusUnhealthy,
			Error:     err.Error(),
			Timestamp: &now,
		})
	}
	return c.JSON(http.StatusOK, HealthResponse{
		Status:    check.Status,
		Timestamp: check.Timestamp,
		Database:  "connected",
		Version:   version,
	})
}

// APIHealth godoc
// @Summary Detailed health probe
// @Description Reports database connectivity together with the current user count.
// @Tags health
// @Produce json
// @Success 200 {object} APIHealthResponse
// @Failure 503 {object} UnhealthyResponse
// @Router /api/health [get]
func (h *HealthHandler) APIHealth(c echo.Context) error {
	count, err := h.userService.CountUsers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusServiceUnavailable, UnhealthyResponse{
			Status: model.StatusUnhealthy,
			Error:  err.Error(),
		})
	}
	return c.JSON(http.StatusOK, APIHealthResponse{
		Status:    model.StatusHealthy,
		Database:  "connected",
		UserCount: count,
		Timestamp: time.Now().UTC(),
	})
}
