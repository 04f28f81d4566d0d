package calendar

import (
	"focusflow-api/core/config"
	"focusflow-api/core/database"
	"focusflow-api/core/middleware"
	"focusflow-api/modules/calendar/controller"
	"focusflow-api/modules/calendar/repository"
	"focusflow-api/modules/calendar/router"
	"focusflow-api/modules/calendar/service"
	scheduleservice "focusflow-api/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the calendar module. It depends on the schedule
// module's service so feed-driven suggestions reuse the same planner.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, schedule scheduleservice.ScheduleServiceInterface, cfg config.CalendarConfig) {
	repo := repository.NewFeedRepository(db)
	svc := service.NewCalendarService(repo, schedule, cfg.FetchTimeoutSeconds)
	ctrl := controller.NewCalendarController(svc)
	rtr := router.NewCalendarRouter(ctrl)

	rtr.Setup(e, mw)
}
