package session

import (
	"focusflow-api/core/database"
	"focusflow-api/core/jobs"
	"focusflow-api/core/middleware"
	"focusflow-api/modules/session/controller"
	"focusflow-api/modules/session/repository"
	"focusflow-api/modules/session/router"
	"focusflow-api/modules/session/service"

	"github.com/labstack/echo/v4"
)

// Init initializes the session module and registers routes. The returned
// service is also used by the cron sweep for stale sessions.
func Init(e *echo.Echo, db database.Database, mw *middleware.Middleware, queue *jobs.Queue) service.SessionServiceInterface {
	repo := repository.NewSessionRepository(db)
	svc := service.NewSessionService(repo, queue)
	ctrl := controller.NewSessionController(svc)
	rtr := router.NewSessionRouter(ctrl)

	rtr.Setup(e, mw)
	return svc
}
