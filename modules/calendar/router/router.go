package router

import (
	"focusflow-api/core/middleware"
	"focusflow-api/modules/calendar/controller"

	"github.com/labstack/echo/v4"
)

// CalendarRouter handles ICS feed routes
type CalendarRouter struct {
	CalendarController *controller.CalendarController
}

func NewCalendarRouter(calendarController *controller.CalendarController) *CalendarRouter {
	return &CalendarRouter{
		CalendarController: calendarController,
	}
}

// Setup registers calendar routes
func (r *CalendarRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private", mw.AuthMiddleware())

	privateRoutes.POST("/calendar/feeds", r.CalendarController.AddFeed)
	privateRoutes.GET("/calendar/feeds", r.CalendarController.ListFeeds)
	privateRoutes.DELETE("/calendar/feeds/:id", r.CalendarController.RemoveFeed)
	privateRoutes.GET("/calendar/events", r.CalendarController.GetEvents)
	privateRoutes.POST("/calendar/suggest", r.CalendarController.Suggest)
}
