package server

import "github.com/labstack/echo/v4"

func RegisterRoutes(e *echo.Echo, h Handlers) {
	h.Menu.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Bill.RegisterRoutes(e)
	h.Archive.RegisterRoutes(e)
	h.Events.RegisterRoutes(e)
	h.Upload.RegisterRoutes(e)
}
