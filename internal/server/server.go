package server

import (
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Menu    *handler.MenuHandler
	Order   *handler.OrderHandler
	Bill    *handler.BillHandler
	Archive *handler.ArchiveHandler
	Events  *handler.EventsHandler
	Upload  *handler.UploadHandler
}

func New(uploadDir string, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	//アップロード画像の配信
	e.Static("/uploads", uploadDir)

	RegisterRoutes(e, h)
	return e
}

func Start(addr string, uploadDir string, h Handlers) error {
	return New(uploadDir, h).Start(addr)
}
