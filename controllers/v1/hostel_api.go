package apiv1

import (
	"campus-backend/controllers"
	"campus-backend/lib/hostel"
	"campus-backend/middleware"
	"campus-backend/models"
	apimodels "campus-backend/models/api"
	hostelapimodels "campus-backend/models/api/hostel"

	"github.com/gofiber/fiber/v2"
)

type hostelApiController struct {
	controllers.BaseAPIController
}

func InitHostelApiRouters(app *fiber.App) {
	controller := hostelApiController{}
	app.Route("hostel", func(router fiber.Router) {
		router.Get("rooms", controller.listRooms)
		router.Get("occupancy", controller.occupancy)
		router.Use(middleware.RoleRequired(
			models.UserRoleSuperAdmin,
			models.UserRoleAdmin,
			models.UserRoleWarden,
		))
		router.Post("rooms", controller.createRoom)
		router.Route("rooms/:id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.getRoom)
			idRoute.Put("", controller.updateRoom)
		})
		router.Put("assign/:room_id/:student_id", controller.assign)
		router.Put("vacate/:student_id", controller.vacate)
	})
}

// @Summary Hostel room list
// @Tags Hostel
// @Description Hostel room list, optionally narrowed to a block
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	block				query		string	false	"block"
// @Success 200 {object} apimodels.Response{data=[]hostelapimodels.RoomView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/hostel/rooms [get]
func (c *hostelApiController) listRooms(ctx *fiber.Ctx) error {
	list, err := hostel.Instance.ListRooms(ctx.Query("block"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "room list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Hostel occupancy
// @Tags Hostel
// @Description Hostel occupancy per block
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=[]hostelapimodels.Occupancy}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/hostel/occupancy [get]
func (c *hostelApiController) occupancy(ctx *fiber.Ctx) error {
	list, err := hostel.Instance.Occupancy()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "occupancy report failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Create a hostel room
// @Tags Hostel
// @Description Create a hostel room
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		hostelapimodels.RoomData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/hostel/rooms [post]
func (c *hostelApiController) createRoom(ctx *fiber.Ctx) error {
	var payload hostelapimodels.RoomData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	id, err := hostel.Instance.CreateRoom(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "room creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(id))
}

// @Summary Hostel room details
// @Tags Hostel
// @Description Hostel room details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"room id"
// @Success 200 {object} apimodels.Response{data=hostelapimodels.RoomView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/hostel/rooms/{id} [get]
func (c *hostelApiController) getRoom(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := hostel.Instance.GetRoom(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "room not available")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Update a hostel room
// @Tags Hostel
// @Description Update a hostel room
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"room id"
// @Param	body				body		hostelapimodels.RoomData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/hostel/rooms/{id} [put]
func (c *hostelApiController) updateRoom(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload hostelapimodels.RoomData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = hostel.Instance.UpdateRoom(id, payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "room update failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Assign a student to a room
// @Tags Hostel
// @Description Assign a student to a room
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	room_id				path		string	true	"room id"
// @Param	student_id			path		string	true	"student id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/hostel/assign/{room_id}/{student_id} [put]
func (c *hostelApiController) assign(ctx *fiber.Ctx) error {
	roomID, err := c.GetIDByKey(ctx, "room_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	studentID, err := c.GetIDByKey(ctx, "student_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = hostel.Instance.AssignStudent(roomID, studentID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "room assignment failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}

// @Summary Vacate a student from the hostel
// @Tags Hostel
// @Description Vacate a student from the hostel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	student_id			path		string	true	"student id"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/hostel/vacate/{student_id} [put]
func (c *hostelApiController) vacate(ctx *fiber.Ctx) error {
	studentID, err := c.GetIDByKey(ctx, "student_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err = hostel.Instance.VacateStudent(studentID)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "room vacation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse("ok"))
}
