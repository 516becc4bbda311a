package apiv1

import (
	"strconv"

	"campus-backend/controllers"
	"campus-backend/lib/exams"
	"campus-backend/middleware"
	apimodels "campus-backend/models/api"
	examapimodels "campus-backend/models/api/exam"

	"github.com/gofiber/fiber/v2"
)

type examApiController struct {
	controllers.BaseAPIController
}

func InitExamApiRouters(app *fiber.App) {
	controller := examApiController{}
	app.Route("exams", func(router fiber.Router) {
		router.Post("result", controller.publish)
		router.Post("list", controller.list)
		router.Get("grade-distribution", controller.gradeDistribution)
	})
}

// @Summary Publish an exam result
// @Tags Exams
// @Description Publish an exam result
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		examapimodels.ResultData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/exams/result [post]
func (c *examApiController) publish(ctx *fiber.Ctx) error {
	var payload examapimodels.ResultData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := exams.Instance.Publish(middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "result publishing failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Exam result list
// @Tags Exams
// @Description Exam result list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		examapimodels.ExamFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]examapimodels.ResultView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/exams/list [post]
func (c *examApiController) list(ctx *fiber.Ctx) error {
	var payload examapimodels.ExamFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := exams.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "exam result list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Grade distribution
// @Tags Exams
// @Description Grade distribution, optionally narrowed to a course and semester
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	course_id			query		string	false	"course id"
// @Param	semester			query		int		false	"semester"
// @Success 200 {object} apimodels.Response{data=[]examapimodels.GradeDistribution}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/exams/grade-distribution [get]
func (c *examApiController) gradeDistribution(ctx *fiber.Ctx) error {
	semester, _ := strconv.Atoi(ctx.Query("semester"))
	list, err := exams.Instance.GradeDistribution(ctx.Query("course_id"), semester)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "grade distribution failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}
