package controller

import (
	"kisaan-academy-be/internal/pkg/serverutils"
	"kisaan-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IWikiController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type wikiController struct {
	wikiService service.IWikiService
}

func NewWikiController(wikiService service.IWikiService) IWikiController {
	return &wikiController{
		wikiService: wikiService,
	}
}

func (c *wikiController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wiki")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *wikiController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")
	language := ctx.Query("language", "ur")

	res, err := c.wikiService.List(ctx.Context(), category, language)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list wiki articles", res))
}

func (c *wikiController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)
	language := ctx.Query("language", "ur")

	res, err := c.wikiService.Show(ctx.Context(), id, language)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Article not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show wiki article", res))
}
