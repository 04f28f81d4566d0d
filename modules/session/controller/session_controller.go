package controller

import (
	"focusflow-api/core/constants"
	"focusflow-api/core/controller"
	"focusflow-api/core/errors"
	"focusflow-api/core/utils"
	"focusflow-api/modules/session/dto"
	"focusflow-api/modules/session/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionController handles focus session HTTP requests
type SessionController struct {
	controller.BaseController
	SessionService service.SessionServiceInterface
}

func NewSessionController(svc service.SessionServiceInterface) *SessionController {
	return &SessionController{
		BaseController: controller.NewBaseController(),
		SessionService: svc,
	}
}

func (c *SessionController) getUserIDFromContext(ctx echo.Context) (uuid.UUID, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}

	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return uuid.Nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}

	return claims.UserID, nil
}

// StartSession handles POST /private/sessions
// @Summary Start a focus session
// @Description Opens a focus session for the given window
// @Tags Session
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.StartSessionRequest true "Session window"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/sessions [post]
func (c *SessionController) StartSession(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.StartSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.ValidationFailed(err)
	}

	result, appErr := c.SessionService.StartSession(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Session started")
}

// GetMySessions handles GET /private/sessions
// @Summary List focus sessions
// @Description Returns the authenticated user's recent sessions
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.SessionResponse
// @Failure 401 {object} errors.AppError
// @Router /private/sessions [get]
func (c *SessionController) GetMySessions(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.SessionService.GetMySessions(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// CompleteSession handles POST /private/sessions/:id/complete
// @Summary Complete a focus session
// @Description Marks a session completed with its distraction tally
// @Tags Session
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param request body dto.CompleteSessionRequest true "Completion details"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/sessions/{id}/complete [post]
func (c *SessionController) CompleteSession(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid session ID")
	}

	var req dto.CompleteSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.ValidationFailed(err)
	}

	result, appErr := c.SessionService.CompleteSession(ctx.Request().Context(), sessionID, userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Session completed")
}

// AbandonSession handles POST /private/sessions/:id/abandon
// @Summary Abandon a focus session
// @Tags Session
// @Security BearerAuth
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionResponse
// @Failure 400 {object} errors.AppError
// @Router /private/sessions/{id}/abandon [post]
func (c *SessionController) AbandonSession(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid session ID")
	}

	result, appErr := c.SessionService.AbandonSession(ctx.Request().Context(), sessionID, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Session abandoned")
}

// Summarize handles POST /private/sessions/:id/summary
// @Summary Summarize a finished focus session
// @Description Computes the heuristic focus score and label for a finished session
// @Tags Session
// @Security BearerAuth
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} dto.SessionSummary
// @Failure 400 {object} errors.AppError
// @Router /private/sessions/{id}/summary [post]
func (c *SessionController) Summarize(ctx echo.Context) error {
	userID, err := c.getUserIDFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	sessionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid session ID")
	}

	result, appErr := c.SessionService.Summarize(ctx.Request().Context(), sessionID, userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Summary computed")
}
