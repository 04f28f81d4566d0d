package ritual

import (
	"focusflow-api/core/middleware"
	"focusflow-api/modules/ritual/controller"
	"focusflow-api/modules/ritual/router"
	"focusflow-api/modules/ritual/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the ritual module and registers routes
func Init(e *echo.Echo, mw *middleware.Middleware) {
	svc := service.NewRitualService()
	ctrl := controller.NewRitualController(svc)
	rtr := router.NewRitualRouter(ctrl)

	rtr.Setup(e, mw)
}
