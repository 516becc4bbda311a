package apiv1

import (
	"campus-backend/controllers"
	"campus-backend/lib/faculty"
	"campus-backend/middleware"
	"campus-backend/models"
	apimodels "campus-backend/models/api"
	facultyapimodels "campus-backend/models/api/faculty"

	"github.com/gofiber/fiber/v2"
)

type facultyApiController struct {
	controllers.BaseAPIController
}

func InitFacultyApiRouters(app *fiber.App) {
	controller := facultyApiController{}
	app.Route("faculty", func(router fiber.Router) {
		router.Use(middleware.RoleRequired(
			models.UserRoleSuperAdmin,
			models.UserRoleAdmin,
			models.UserRoleHod,
		))
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get("designation-stats", controller.designationStats)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Put("deactivate", controller.deactivate)
		})
	})
}

// @Summary Register a faculty member
// @Tags Faculty
// @Description Register a faculty member
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		facultyapimodels.FacultyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/faculty [post]
func (c *facultyApiController) create(ctx *fiber.Ctx) error {
	var payload facultyapimodels.FacultyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := faculty.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "faculty registration failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Faculty list
// @Tags Faculty
// @Description Faculty list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		facultyapimodels.FacultyFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]facultyapimodels.FacultyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/faculty/list [post]
func (c *facultyApiController) list(ctx *fiber.Ctx) error {
	var payload facultyapimodels.FacultyFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := faculty.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "faculty list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Faculty headcount by designation
// @Tags Faculty
// @Description Faculty headcount by designation
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]facultyapimodels.DesignationCount}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/faculty/designation-stats [get]
func (c *facultyApiController) designationStats(ctx *fiber.Ctx) error {
	list, err := faculty.Instance.DesignationStats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "designation stats failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Faculty member details
// @Tags Faculty
// @Description Faculty member details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"faculty id"
// @Success 200 {object} apimodels.Response{data=facultyapimodels.FacultyView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/faculty/{id} [get]
func (c *facultyApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := faculty.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "faculty member not available")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a faculty member
// @Tags Faculty
// @Description Update a faculty member
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"faculty id"
// @Param	body				body		facultyapimodels.FacultyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/faculty/{id} [put]
func (c *facultyApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload facultyapimodels.FacultyData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = faculty.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "faculty update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Deactivate a faculty member
// @Tags Faculty
// @Description Disable the login account, the record is kept
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"faculty id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/faculty/{id}/deactivate [put]
func (c *facultyApiController) deactivate(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = faculty.Instance.Deactivate(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "faculty deactivation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
