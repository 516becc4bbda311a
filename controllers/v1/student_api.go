package apiv1

import (
	"io"

	"campus-backend/controllers"
	"campus-backend/lib/students"
	"campus-backend/middleware"
	"campus-backend/models"
	apimodels "campus-backend/models/api"
	studentapimodels "campus-backend/models/api/student"

	"github.com/gofiber/fiber/v2"
)

type studentApiController struct {
	controllers.BaseAPIController
}

func InitStudentApiRouters(app *fiber.App) {
	controller := studentApiController{}
	app.Route("students", func(router fiber.Router) {
		router.Use(middleware.RoleRequired(
			models.UserRoleSuperAdmin,
			models.UserRoleAdmin,
			models.UserRoleFaculty,
			models.UserRoleWarden,
			models.UserRoleHod,
			models.UserRoleStaff,
		))
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("", controller.update)
			idRoute.Post("document", controller.uploadDocument)
			idRoute.Get("document/:doc_id", controller.getDocument)
		})
	})
}

// @Summary Enroll a student
// @Tags Students
// @Description Enroll a student
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		studentapimodels.StudentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/students [post]
func (c *studentApiController) create(ctx *fiber.Ctx) error {
	var payload studentapimodels.StudentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := students.Instance.Create(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "student enrollment failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Student list
// @Tags Students
// @Description Student list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		studentapimodels.StudentFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]studentapimodels.StudentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/students/list [post]
func (c *studentApiController) list(ctx *fiber.Ctx) error {
	var payload studentapimodels.StudentFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := students.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "student list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Student details
// @Tags Students
// @Description Student details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"student id"
// @Success 200 {object} apimodels.Response{data=studentapimodels.StudentView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/students/{id} [get]
func (c *studentApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := students.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "student not available")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update student profile
// @Tags Students
// @Description Update student profile
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"student id"
// @Param	body				body		studentapimodels.StudentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/students/{id} [put]
func (c *studentApiController) update(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload studentapimodels.StudentData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = students.Instance.Update(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "student update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Upload a student document
// @Tags Students
// @Description Upload a student document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"student id"
// @Param	file				formData	file	true	"document file"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/students/{id}/document [post]
func (c *studentApiController) uploadDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is required"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is not readable"))
	}
	defer file.Close()
	body, err := io.ReadAll(file)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError("file is not readable"))
	}
	docID, err := students.Instance.UploadDocument(ctx.UserContext(), id, fileHeader.Filename, fileHeader.Header.Get("Content-Type"), body)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document upload failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(docID))
}

// @Summary Download a student document
// @Tags Students
// @Description Download a student document
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"student id"
// @Param	doc_id				path		string	true	"document id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/students/{id}/document/{doc_id} [get]
func (c *studentApiController) getDocument(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	docID, err := c.GetIDByKey(ctx, "doc_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	name, body, err := students.Instance.GetDocument(ctx.UserContext(), id, docID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "document download failed")
	}
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return ctx.Send(body)
}
