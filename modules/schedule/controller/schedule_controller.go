package controller

import (
	"focusflow-api/core/constants"
	"focusflow-api/core/controller"
	"focusflow-api/core/errors"
	"focusflow-api/core/utils"
	"focusflow-api/modules/schedule/dto"
	"focusflow-api/modules/schedule/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ScheduleController handles focus-window HTTP requests
type ScheduleController struct {
	controller.BaseController
	ScheduleService service.ScheduleServiceInterface
}

func NewScheduleController(svc service.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		BaseController:  controller.NewBaseController(),
		ScheduleService: svc,
	}
}

// optionalUserID returns the authenticated user when a token is present;
// the suggest endpoint works anonymously too.
func (c *ScheduleController) optionalUserID(ctx echo.Context) *uuid.UUID {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil
	}
	return &claims.UserID
}

// Suggest handles POST /schedule/suggest
// @Summary Suggest an optimal focus window
// @Description Runs the focus-window planner over the supplied calendar events and preferences
// @Tags Schedule
// @Accept json
// @Produce json
// @Param request body dto.SuggestRequest true "Calendar events and preferences"
// @Success 200 {object} dto.SuggestResponse
// @Failure 400 {object} errors.AppError
// @Router /schedule/suggest [post]
func (c *ScheduleController) Suggest(ctx echo.Context) error {
	var req dto.SuggestRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.ValidationFailed(err)
	}

	result, appErr := c.ScheduleService.Suggest(ctx.Request().Context(), c.optionalUserID(ctx), &req)
	if appErr != nil {
		return c.InternalServerError(appErr.Code, appErr.Message)
	}

	return c.SuccessResponse(ctx, result, result.Message)
}

// GetHistory handles GET /private/schedule/history
// @Summary List recent focus suggestions
// @Description Returns the authenticated user's stored planner outcomes
// @Tags Schedule
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.SuggestionHistoryItem
// @Failure 401 {object} errors.AppError
// @Router /private/schedule/history [get]
func (c *ScheduleController) GetHistory(ctx echo.Context) error {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.ScheduleService.GetHistory(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.InternalServerError(appErr.Code, appErr.Message)
	}

	return c.SuccessResponse(ctx, result, "Success")
}
