package controller

import (
	"time"

	"focusflow-api/core/constants"
	"focusflow-api/core/controller"
	"focusflow-api/core/errors"
	"focusflow-api/core/utils"
	"focusflow-api/modules/calendar/dto"
	"focusflow-api/modules/calendar/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CalendarController handles ICS feed HTTP requests
type CalendarController struct {
	controller.BaseController
	CalendarService service.CalendarServiceInterface
}

func NewCalendarController(svc service.CalendarServiceInterface) *CalendarController {
	return &CalendarController{
		BaseController:  controller.NewBaseController(),
		CalendarService: svc,
	}
}

func (c *CalendarController) currentUserID(ctx echo.Context) (uuid.UUID, bool) {
	tokenData := ctx.Get(constants.ContextTokenData)
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok || claims == nil {
		return uuid.UUID{}, false
	}
	return claims.UserID, true
}

// AddFeed handles POST /private/calendar/feeds
// @Summary Subscribe to an ICS feed
// @Tags Calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddFeedRequest true "Feed name and URL"
// @Success 200 {object} dto.FeedResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/calendar/feeds [post]
func (c *CalendarController) AddFeed(ctx echo.Context) error {
	userID, ok := c.currentUserID(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.AddFeedRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.ValidationFailed(err)
	}

	result, appErr := c.CalendarService.AddFeed(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Calendar feed added")
}

// ListFeeds handles GET /private/calendar/feeds
// @Summary List subscribed ICS feeds
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.FeedResponse
// @Failure 401 {object} errors.AppError
// @Router /private/calendar/feeds [get]
func (c *CalendarController) ListFeeds(ctx echo.Context) error {
	userID, ok := c.currentUserID(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	result, appErr := c.CalendarService.ListFeeds(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// RemoveFeed handles DELETE /private/calendar/feeds/:id
// @Summary Remove an ICS feed subscription
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param id path string true "Feed ID"
// @Success 200 {object} map[string]any
// @Failure 401 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/calendar/feeds/{id} [delete]
func (c *CalendarController) RemoveFeed(ctx echo.Context) error {
	userID, ok := c.currentUserID(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	feedID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid feed id")
	}

	if appErr := c.CalendarService.RemoveFeed(ctx.Request().Context(), userID, feedID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, nil, "Calendar feed removed")
}

// GetEvents handles GET /private/calendar/events
// @Summary List the day's events across all feeds
// @Tags Calendar
// @Security BearerAuth
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD), defaults to today"
// @Success 200 {object} dto.DayEventsResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/calendar/events [get]
func (c *CalendarController) GetEvents(ctx echo.Context) error {
	userID, ok := c.currentUserID(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	day := time.Now()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "date must be YYYY-MM-DD")
		}
		day = parsed
	}

	result, appErr := c.CalendarService.EventsForDay(ctx.Request().Context(), userID, day)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, "Success")
}

// Suggest handles POST /private/calendar/suggest
// @Summary Suggest a focus window from subscribed feeds
// @Description Fetches the user's ICS feeds and runs the focus-window planner over the day's events
// @Tags Calendar
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.SuggestFromFeedsRequest true "Day and preferences"
// @Success 200 {object} scheduledto.SuggestResponse
// @Failure 400 {object} errors.AppError
// @Failure 401 {object} errors.AppError
// @Router /private/calendar/suggest [post]
func (c *CalendarController) Suggest(ctx echo.Context) error {
	userID, ok := c.currentUserID(ctx)
	if !ok {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.SuggestFromFeedsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.ValidationFailed(err)
	}

	result, appErr := c.CalendarService.SuggestFromFeeds(ctx.Request().Context(), userID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, result, result.Message)
}
