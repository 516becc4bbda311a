package apiv1

import (
	"campus-backend/controllers"
	"campus-backend/lib/fees"
	"campus-backend/middleware"
	apimodels "campus-backend/models/api"
	feeapimodels "campus-backend/models/api/fee"

	"github.com/gofiber/fiber/v2"
)

type feeApiController struct {
	controllers.BaseAPIController
}

func InitFeeApiRouters(app *fiber.App) {
	controller := feeApiController{}
	app.Route("fees", func(router fiber.Router) {
		router.Post("payment", controller.recordPayment)
		router.Post("list", controller.list)
		router.Get("totals", controller.totals)
		router.Get("receipt/:receipt_number", controller.receipt)
	})
}

// @Summary Record a fee payment
// @Tags Fees
// @Description Record a fee payment and issue a receipt number
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		feeapimodels.PaymentData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/fees/payment [post]
func (c *feeApiController) recordPayment(ctx *fiber.Ctx) error {
	var payload feeapimodels.PaymentData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	receiptNumber, err := fees.Instance.RecordPayment(middleware.GetIdentity(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "payment recording failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(receiptNumber))
}

// @Summary Fee payment list
// @Tags Fees
// @Description Fee payment list
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body				body		feeapimodels.FeeFilter	true	"request filter body"
// @Success 200 {object} apimodels.ScrollerResponse{data=[]feeapimodels.FeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/fees/list [post]
func (c *feeApiController) list(ctx *fiber.Ctx) error {
	var payload feeapimodels.FeeFilter
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	list, rowCount, err := fees.Instance.List(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "fee list failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewScrollerResponse(list, rowCount))
}

// @Summary Fee totals
// @Tags Fees
// @Description Collected and outstanding totals, campus-wide or per student
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	student_id			query		string	false	"student id"
// @Success 200 {object} apimodels.Response{data=feeapimodels.Totals}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/fees/totals [get]
func (c *feeApiController) totals(ctx *fiber.Ctx) error {
	totals, err := fees.Instance.Totals(ctx.Query("student_id"))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "fee totals failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(totals))
}

// @Summary Payment by receipt number
// @Tags Fees
// @Description Payment by receipt number
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	receipt_number		path		string	true	"receipt number"
// @Success 200 {object} apimodels.Response{data=feeapimodels.FeeView}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/fees/receipt/{receipt_number} [get]
func (c *feeApiController) receipt(ctx *fiber.Ctx) error {
	receiptNumber, err := c.GetIDByKey(ctx, "receipt_number")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	view, err := fees.Instance.GetByReceipt(receiptNumber)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "receipt not available")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
