package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"usersvc/internal/errors"
	"usersvc/internal/handler"
	"usersvc/internal/web"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	healthHandler *handler.HealthHandler,
	databaseHandler *handler.DatabaseHandler,
	webHandler *handler.WebHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.HTTPErrorHandler = httpErrorHandler
	e.Renderer = web.NewRenderer()

	e.GET("/", webHandler.Index)
	e.GET("/health", healthHandler.Health)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.StaticFS("/static", web.StaticFS())

	api := e.Group("/api")

	api.GET("/users", userHandler.ListUsers)
	api.POST("/users", userHandler.CreateUser)
	api.DELETE("/users/:id", userHandler.DeleteUser)
	api.GET("/health", healthHandler.APIHealth)
	api.GET("/database/init", databaseHandler.Init)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// httpErrorHandler keeps every error body in the error/code JSON shape,
// including echo's own not-found and method-not-allowed errors.
func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	body := errors.ErrorResponse{Error: "internal server error", Code: "INTERNAL_ERROR"}

	if he, ok := err.(*echo.HTTPError); ok {
		if internal, ok := he.Internal.(*echo.HTTPError); ok {
			he = internal
		}
		code = he.Code
		switch msg := he.Message.(type) {
		case errors.ErrorResponse:
			body = msg
		case string:
			body = errors.ErrorResponse{Error: strings.ToLower(msg), Code: errorCode(code)}
		default:
			body = errors.ErrorResponse{Error: strings.ToLower(http.StatusText(code)), Code: errorCode(code)}
		}
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(code)
	} else {
		werr = c.JSON(code, body)
	}
	if werr != nil {
		c.Logger().Error(werr)
	}
}

func errorCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusBadRequest:
		return "VALIDATION_ERROR"
	default:
		return "INTERNAL_ERROR"
	}
}
