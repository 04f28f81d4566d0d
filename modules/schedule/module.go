package schedule

import (
	"focusflow-api/core/cache"
	"focusflow-api/core/config"
	"focusflow-api/core/database"
	"focusflow-api/core/middleware"
	"focusflow-api/modules/schedule/controller"
	"focusflow-api/modules/schedule/repository"
	"focusflow-api/modules/schedule/router"
	"focusflow-api/modules/schedule/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the schedule module and registers routes. The returned
// service is shared with the calendar module (suggest-from-feed) and the
// cron sweeps.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, c *cache.Cache, cfg config.PlannerConfig) service.ScheduleServiceInterface {
	repo := repository.NewSuggestionRepository(db)
	planner := service.NewPlannerFromConfig(cfg)
	svc := service.NewScheduleService(repo, c, planner, cfg.CacheTTLSeconds)
	ctrl := controller.NewScheduleController(svc)
	rtr := router.NewScheduleRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
