package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"usersvc/internal/model"
	"usersvc/internal/service"
)

// recentUserCount limits how many users the landing page shows.
const recentUserCount = 5

// WebHandler renders the HTML landing page.
type WebHandler struct {
	userService   service.UserService
	healthService service.HealthService
	env           string
}

// NewWebHandler creates a handler layer.
func NewWebHandler(userService service.UserService, healthService service.HealthService, env string) *WebHandler {
	return &WebHandler{userService: userService, healthService: healthService, env: env}
}

// IndexData carries everything the landing page template needs.
type IndexData struct {
	Status      string
	DBStatus    string
	Environment string
	Users       []model.User
}

// Index renders the landing page with service status and the most
// recent users. A database outage degrades the page instead of
// failing it.
func (h *WebHandler) Index(c echo.Context) error {
	ctx := c.Request().Context()

	dbStatus := "Connected"
	if err := h.healthService.Ping(ctx); err != nil {
		dbStatus = "Disconnected"
	}

	users, err := h.userService.RecentUsers(ctx, recentUserCount)
	if err != nil {
		users = nil
	}

	return c.Render(http.StatusOK, "index.html", IndexData{
		Status:      "Running",
		DBStatus:    dbStatus,
		Environment: h.env,
		Users:       users,
	})
}
