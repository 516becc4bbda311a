package apiv1

import (
	"time"

	"campus-backend/controllers"
	"campus-backend/lib/attendance"
	"campus-backend/middleware"
	apimodels "campus-backend/models/api"
	attendanceapimodels "campus-backend/models/api/attendance"

	"github.com/gofiber/fiber/v2"
)

type attendanceApiController struct {
	controllers.BaseAPIController
}

func InitAttendanceApiRouters(app *fiber.App) {
	controller := attendanceApiController{}
	app.Route("attendance", func(router fiber.Router) {
		router.Post("mark", controller.mark)
		router.Post("bulk-mark", controller.bulkMark)
		router.Post("list", controller.list)
		router.Get("summary/:student_id", controller.summary)
	})
}

// @Summary Mark attendance for a student
// @Tags Attendance
// @Description Mark attendance for a student
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.MarkData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/attendance/mark [post]
func (c *attendanceApiController) mark(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.MarkData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := attendance.Instance.Mark(middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "attendance mark failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Save an attendance sheet
// @Tags Attendance
// @Description Save an attendance sheet for a course and date
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.BulkMarkData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/attendance/bulk-mark [post]
func (c *attendanceApiController) bulkMark(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.BulkMarkData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	marked, err := attendance.Instance.BulkMark(middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "attendance sheet save failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(marked))
}

// @Summary Attendance list
// @Tags Attendance
// @Description Attendance list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		attendanceapimodels.AttendanceFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]attendanceapimodels.AttendanceView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/attendance/list [post]
func (c *attendanceApiController) list(ctx *fiber.Ctx) error {
	var payload attendanceapimodels.AttendanceFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := attendance.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "attendance list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Attendance summary for a student
// @Tags Attendance
// @Description Attendance percentage over the given period
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	student_id			path		string	true	"student id"
// @Param	from				query		string	false	"period start (2006-01-02)"
// @Param	to					query		string	false	"period end (2006-01-02)"
// @Success 200 {object} apimodels.Response{data=attendanceapimodels.Summary}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/attendance/summary/{student_id} [get]
func (c *attendanceApiController) summary(ctx *fiber.Ctx) error {
	studentID, err := c.GetIDByKey(ctx, "student_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	from, _ := time.Parse("2006-01-02", ctx.Query("from"))
	to, _ := time.Parse("2006-01-02", ctx.Query("to"))
	summary, err := attendance.Instance.StudentSummary(studentID, from, to)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "attendance summary failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(summary))
}
