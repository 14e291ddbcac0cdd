package http

import "github.com/labstack/echo/v4"

// Handler registers a group of routes. Handlers return errors instead of writing
// them; the server renders every error through ErrorResponse.
type Handler interface {
	RegisterRoutes(e *echo.Echo)
}
