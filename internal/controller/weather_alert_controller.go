package controller

import (
	"kisaan-academy-be/internal/pkg/serverutils"
	"kisaan-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWeatherAlertController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
}

type weatherAlertController struct {
	weatherAlertService service.IWeatherAlertService
}

func NewWeatherAlertController(weatherAlertService service.IWeatherAlertService) IWeatherAlertController {
	return &weatherAlertController{
		weatherAlertService: weatherAlertService,
	}
}

func (c *weatherAlertController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/weather-alerts")
	h.Get("", c.List)
	h.Post("update", c.Update)
}

func (c *weatherAlertController) List(ctx *fiber.Ctx) error {
	region := ctx.Query("region", "")
	language := ctx.Query("language", "ur")
	update := ctx.QueryBool("update", false)

	res, err := c.weatherAlertService.List(ctx.Context(), region, language, update)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list weather alerts", res))
}

func (c *weatherAlertController) Update(ctx *fiber.Ctx) error {
	region := ctx.Query("region", "")

	res, err := c.weatherAlertService.Refresh(ctx.Context(), region)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update weather alerts", res))
}
