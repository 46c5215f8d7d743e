package router

import (
	"github.com/labstack/echo/v4"

	"milkbill/pkg/bill/controller"
)

func New(
	e *echo.Echo,
	billCtrl controller.BillController,
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.GET("/health", healthCtrl.Health)

	api := e.Group("/api")
	api.POST("/bills", billCtrl.Create)
	api.GET("/bills", billCtrl.List)
	api.GET("/bills/search", billCtrl.Search)
	api.GET("/bills/summary", billCtrl.Summary)
	api.GET("/bills/export", billCtrl.Export)
	api.DELETE("/bills/:id", billCtrl.Delete)

	return e
}
