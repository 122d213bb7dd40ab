package controller

import (
	"kisaan-academy-be/internal/pkg/serverutils"
	"kisaan-academy-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICourseController interface {
	RegisterRoutes(r fiber.Router)
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type courseController struct {
	courseService service.ICourseService
}

func NewCourseController(courseService service.ICourseService) ICourseController {
	return &courseController{
		courseService: courseService,
	}
}

func (c *courseController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/courses")
	h.Get("", c.List)
	h.Get(":id", c.Show)
}

func (c *courseController) List(ctx *fiber.Ctx) error {
	category := ctx.Query("category", "")
	language := ctx.Query("language", "ur")

	res, err := c.courseService.List(ctx.Context(), category, language)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list courses", res))
}

func (c *courseController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)
	language := ctx.Query("language", "ur")

	res, err := c.courseService.Show(ctx.Context(), id, language)
	if err != nil {
		return err
	}
	if res == nil {
		return fiber.NewError(fiber.StatusNotFound, "Course not found")
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show course", res))
}
