package dict

import (
	"campus-backend/controllers"
	courseprovider "campus-backend/lib/dicts/course"
	"campus-backend/middleware"
	apimodels "campus-backend/models/api"
	dictapimodels "campus-backend/models/api/dict"

	"github.com/gofiber/fiber/v2"
)

type courseApiController struct {
	controllers.BaseAPIController
}

func InitCourseDictApiRouters(app *fiber.App) {
	controller := courseApiController{}
	app.Route("course", func(router fiber.Router) {
		router.Get("", controller.list)
		router.Use(middleware.AdminRoleRequired()).Post("", controller.create)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Use(middleware.AdminRoleRequired()).Put("", controller.update)
			idRoute.Use(middleware.AdminRoleRequired()).Delete("", controller.deactivate)
		})
	})
}

// @Summary Course list
// @Tags Dictionaries
// @Description Course list, optionally narrowed to a department
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	department_id		query		string	false	"department id"
// @Success 200 {object} apimodels.Response{data=[]dictapimodels.CourseView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/course [get]
func (c *courseApiController) list(ctx *fiber.Ctx) error {
	list, err := courseprovider.Instance.List(ctx.Query("department_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "course list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a course
// @Tags Dictionaries
// @Description Create a course
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		dictapimodels.CourseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/course [post]
func (c *courseApiController) create(ctx *fiber.Ctx) error {
	var payload dictapimodels.CourseData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := courseprovider.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "course creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Course details
// @Tags Dictionaries
// @Description Course details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"course id"
// @Success 200 {object} apimodels.Response{data=dictapimodels.CourseView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/course/{id} [get]
func (c *courseApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	item, err := courseprovider.Instance.Get(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "course not available")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(item))
}

// @Summary Update a course
// @Tags Dictionaries
// @Description Update a course
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"course id"
// @Param	body				body		dictapimodels.CourseData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/course/{id} [put]
func (c *courseApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload dictapimodels.CourseData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = courseprovider.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "course update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Deactivate a course
// @Tags Dictionaries
// @Description Deactivate a course
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"course id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/dict/course/{id} [delete]
func (c *courseApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = courseprovider.Instance.Deactivate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "course deactivation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
