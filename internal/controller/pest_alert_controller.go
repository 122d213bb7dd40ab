package controller

import (
	"kisaan-academy-be/internal/pkg/serverutils"
	"kisaan-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPestAlertController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type pestAlertController struct {
	pestAlertService service.IPestAlertService
}

func NewPestAlertController(pestAlertService service.IPestAlertService) IPestAlertController {
	return &pestAlertController{
		pestAlertService: pestAlertService,
	}
}

func (c *pestAlertController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/pest-alerts")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *pestAlertController) List(ctx *fiber.Ctx) error {
	region := ctx.Query("region", "")
	pestName := ctx.Query("pest_name", "")
	language := ctx.Query("language", "ur")

	res, err := c.pestAlertService.List(ctx.Context(), region, pestName, language)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list pest alerts", res))
}

func (c *pestAlertController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)
	language := ctx.Query("language", "ur")

	res, err := c.pestAlertService.Show(ctx.Context(), id, language)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Pest alert not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show pest alert", res))
}
