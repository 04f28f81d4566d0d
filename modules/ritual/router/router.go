package router

import (
	"focusflow-api/core/middleware"
	"focusflow-api/modules/ritual/controller"

	"github.com/labstack/echo/v4"
)

// RitualRouter handles focus-ritual routes
type RitualRouter struct {
	RitualController *controller.RitualController
}

func NewRitualRouter(ritualController *controller.RitualController) *RitualRouter {
	return &RitualRouter{
		RitualController: ritualController,
	}
}

// Setup registers ritual routes
func (r *RitualRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	v1.POST("/rituals/generate", r.RitualController.Generate)
}
