package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"usersvc/internal/db"
	"usersvc/internal/errors"
)

// DatabaseHandler exposes schema management over HTTP.
type DatabaseHandler struct {
	db *gorm.DB
}

// NewDatabaseHandler creates a handler layer.
func NewDatabaseHandler(gdb *gorm.DB) *DatabaseHandler {
	return &DatabaseHandler{db: gdb}
}

// InitResponse represents a schema initialization acknowledgement.
type InitResponse struct {
	Message string `json:"message"`
}

// Init godoc
// @Summary Initialize database schema
// @Description Creates any missing tables. Safe to call repeatedly.
// @Tags database
// @Produce json
// @Success 200 {object} InitResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/database/init [get]
func (h *DatabaseHandler) Init(c echo.Context) error {
	if err := db.Migrate(h.db); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: err.Error(),
			Code:  "DATABASE_ERROR",
		})
	}
	return c.JSON(http.StatusOK, InitResponse{Message: "database initialized successfully"})
}
