package apiv1

import (
	"fmt"
	"time"

	"campus-backend/controllers"
	"campus-backend/lib/analytics"
	"campus-backend/lib/outpass"
	"campus-backend/middleware"
	"campus-backend/models"
	apimodels "campus-backend/models/api"
	outpassapimodels "campus-backend/models/api/outpass"

	"github.com/gofiber/fiber/v2"
)

type outpassApiController struct {
	controllers.BaseAPIController
}

func InitOutpassApiRouters(app *fiber.App) {
	controller := outpassApiController{}
	app.Route("outpass", func(router fiber.Router) {
		router.Post("", controller.create)
		router.Post("list", controller.list)
		router.Get("stats", controller.stats)
		router.Put("register_export", controller.registerExport)
		router.Route(":id", func(idRoute fiber.Router) {
			idRoute.Get("", controller.get)
			idRoute.Put("decide/:stage_role", controller.decide)
			idRoute.Put("cancel", controller.cancel)
			idRoute.Get("history", controller.history)
			idRoute.Get("gate-pass", controller.gatePass)
		})
	})
}

// @Summary Submit an out-pass request
// @Tags Out-pass
// @Description Submit an out-pass request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		outpassapimodels.OutpassCreateData	true	"request body"
// @Success 200 {object} apimodels.Response{data=outpassapimodels.OutpassView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass [post]
func (c *outpassApiController) create(ctx *fiber.Ctx) error {
	var payload outpassapimodels.OutpassCreateData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := outpass.Instance.Create(middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass request creation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Out-pass request list
// @Tags Out-pass
// @Description Out-pass request list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		outpassapimodels.OutpassFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]outpassapimodels.OutpassView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/list [post]
func (c *outpassApiController) list(ctx *fiber.Ctx) error {
	var payload outpassapimodels.OutpassFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := outpass.Instance.List(middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Out-pass status counters
// @Tags Out-pass
// @Description Out-pass status counters
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=outpassapimodels.StatusStats}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/stats [get]
func (c *outpassApiController) stats(ctx *fiber.Ctx) error {
	stats, err := outpass.Instance.Stats()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass stats failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(stats))
}

// @Summary Out-pass request details
// @Tags Out-pass
// @Description Out-pass request details
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Success 200 {object} apimodels.Response{data=outpassapimodels.OutpassView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/{id} [get]
func (c *outpassApiController) get(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := outpass.Instance.GetByID(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass request not available")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Decide an approval stage
// @Tags Out-pass
// @Description Decide an approval stage
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Param	stage_role			path		string	true	"stage role (WARDEN/HOD)"
// @Param	body				body		outpassapimodels.DecisionData	true	"decision body"
// @Success 200 {object} apimodels.Response{data=outpassapimodels.OutpassView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/{id}/decide/{stage_role} [put]
func (c *outpassApiController) decide(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stageRole, err := c.GetIDByKey(ctx, "stage_role")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload outpassapimodels.DecisionData
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := outpass.Instance.Decide(id, models.StageRole(stageRole), middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass decision failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Cancel an own pending request
// @Tags Out-pass
// @Description Cancel an own pending request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Success 200 {object} apimodels.Response{data=outpassapimodels.OutpassView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/{id}/cancel [put]
func (c *outpassApiController) cancel(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := outpass.Instance.Cancel(id, middleware.GetIdentity(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass cancel failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}

// @Summary Out-pass audit history
// @Tags Out-pass
// @Description Out-pass audit history
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Success 200 {object} apimodels.Response{data=[]outpassapimodels.HistoryView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/{id}/history [get]
func (c *outpassApiController) history(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, err := outpass.Instance.History(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass history failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(list))
}

// @Summary Printable gate pass
// @Tags Out-pass
// @Description Printable gate pass for an approved request
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	id					path		string	true	"request id"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/{id}/gate-pass [get]
func (c *outpassApiController) gatePass(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, err := analytics.Instance.GatePassToPdf(id)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "gate pass generation failed")
	}
	fileName := fmt.Sprintf("gate-pass-%v.pdf", id)
	ctx.Set("Content-Type", "application/pdf")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.Send(data)
}

// @Summary Out-pass register export to Excel
// @Tags Out-pass
// @Description Out-pass register export to Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		outpassapimodels.OutpassFilter	true	"request filter body"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/outpass/register_export [put]
func (c *outpassApiController) registerExport(ctx *fiber.Ctx) error {
	var payload outpassapimodels.OutpassFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	payload.Limit = 1000
	data, err := analytics.Instance.OutpassRegisterToXls(middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "out-pass register export failed")
	}
	fileName := fmt.Sprintf("outpass-register-%v.xlsx", time.Now().Format("20060102-150405"))
	ctx.Set("Content-Type", "application/vnd.ms-excel")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	return ctx.SendStream(data)
}
