package apiv1

import (
	"campus-backend/controllers"
	"campus-backend/lib/analytics"
	"campus-backend/middleware"
	"campus-backend/models"
	apimodels "campus-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

type dashboardApiController struct {
	controllers.BaseAPIController
}

func InitDashboardApiRouters(app *fiber.App) {
	controller := dashboardApiController{}
	app.Route("dashboard", func(router fiber.Router) {
		router.Use(middleware.RoleRequired(
			models.UserRoleSuperAdmin,
			models.UserRoleAdmin,
			models.UserRoleFaculty,
			models.UserRoleWarden,
			models.UserRoleHod,
		))
		router.Get("", controller.dashboard)
	})
}

// @Summary Admin dashboard
// @Tags Dashboard
// @Description Campus-wide counters for the admin landing page
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=dashboardapimodels.DashboardView}
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/campus/dashboard [get]
func (c *dashboardApiController) dashboard(ctx *fiber.Ctx) error {
	view, err := analytics.Instance.Dashboard()
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "dashboard aggregation failed")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(view))
}
