package controller

import (
	"focusflow-api/core/controller"
	"focusflow-api/core/errors"
	"focusflow-api/modules/ritual/dto"
	"focusflow-api/modules/ritual/service"

	"github.com/labstack/echo/v4"
)

// RitualController handles focus-ritual HTTP requests
type RitualController struct {
	controller.BaseController
	RitualService service.RitualServiceInterface
}

func NewRitualController(svc service.RitualServiceInterface) *RitualController {
	return &RitualController{
		BaseController: controller.NewBaseController(),
		RitualService:  svc,
	}
}

// Generate handles POST /rituals/generate
// @Summary Generate a pre-focus ritual
// @Description Builds a short warm-up checklist sized to the day's calendar density
// @Tags Ritual
// @Accept json
// @Produce json
// @Param request body dto.GenerateRitualRequest true "Density and focus preferences"
// @Success 200 {object} dto.RitualResponse
// @Failure 400 {object} errors.AppError
// @Router /rituals/generate [post]
func (c *RitualController) Generate(ctx echo.Context) error {
	var req dto.GenerateRitualRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	if err := ctx.Validate(&req); err != nil {
		return c.ValidationFailed(err)
	}

	result := c.RitualService.Generate(&req)
	return c.SuccessResponse(ctx, result, "Success")
}
