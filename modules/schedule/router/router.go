package router

import (
	"focusflow-api/core/middleware"
	"focusflow-api/modules/schedule/controller"

	"github.com/labstack/echo/v4"
)

// ScheduleRouter handles focus-window routes
type ScheduleRouter struct {
	ScheduleController *controller.ScheduleController
}

func NewScheduleRouter(scheduleController *controller.ScheduleController) *ScheduleRouter {
	return &ScheduleRouter{
		ScheduleController: scheduleController,
	}
}

// Setup registers schedule routes
func (r *ScheduleRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	// Suggest is public: the planner needs no account, only events.
	v1.POST("/schedule/suggest", r.ScheduleController.Suggest)

	privateRoutes := v1.Group("/private", mw.AuthMiddleware())
	privateRoutes.GET("/schedule/history", r.ScheduleController.GetHistory)
}
