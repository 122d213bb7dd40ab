package controller

import (
	"net/url"

	"kisaan-academy-be/internal/pkg/serverutils"
	"kisaan-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IMarketPriceController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Forecast(ctx *fiber.Ctx) error
}

type marketPriceController struct {
	marketService service.IMarketService
}

func NewMarketPriceController(marketService service.IMarketService) IMarketPriceController {
	return &marketPriceController{
		marketService: marketService,
	}
}

func (c *marketPriceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/market-prices")
	h.Get("", c.List)
	h.Post("update", c.Update)
	h.Get("forecast/:crop_name", c.Forecast)
}

func (c *marketPriceController) List(ctx *fiber.Ctx) error {
	cropName := ctx.Query("crop_name", "")
	region := ctx.Query("region", "")
	update := ctx.QueryBool("update", false)

	res, err := c.marketService.List(ctx.Context(), cropName, region, update)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list market prices", res))
}

func (c *marketPriceController) Update(ctx *fiber.Ctx) error {
	res, err := c.marketService.UpdatePrices(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update market prices", res))
}

func (c *marketPriceController) Forecast(ctx *fiber.Ctx) error {
	// Crop names arrive percent-encoded when written in Urdu script
	cropName := ctx.Params("crop_name")
	if decoded, err := url.PathUnescape(cropName); err == nil {
		cropName = decoded
	}
	region := ctx.Query("region", "")

	res, err := c.marketService.Forecast(ctx.Context(), cropName, region)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success forecast price", res))
}
