package router

import (
	"focusflow-api/core/middleware"
	"focusflow-api/modules/session/controller"

	"github.com/labstack/echo/v4"
)

// SessionRouter handles focus session routes
type SessionRouter struct {
	SessionController *controller.SessionController
}

func NewSessionRouter(sessionController *controller.SessionController) *SessionRouter {
	return &SessionRouter{
		SessionController: sessionController,
	}
}

// Setup registers session routes (all protected)
func (r *SessionRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")
	privateRoutes := v1.Group("/private")

	sessionRoutes := privateRoutes.Group("/sessions", mw.AuthMiddleware())

	sessionRoutes.POST("", r.SessionController.StartSession)
	sessionRoutes.GET("", r.SessionController.GetMySessions)
	sessionRoutes.POST("/:id/complete", r.SessionController.CompleteSession)
	sessionRoutes.POST("/:id/abandon", r.SessionController.AbandonSession)
	sessionRoutes.POST("/:id/summary", r.SessionController.Summarize)
}
