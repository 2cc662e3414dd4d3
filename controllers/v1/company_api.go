package apiv1

import (
	"rh-hub-backend/controllers"
	companyhandler "rh-hub-backend/lib/company"
	"rh-hub-backend/middleware"
	apimodels "rh-hub-backend/models/api"
	companyapimodels "rh-hub-backend/models/api/company"

	"github.com/gofiber/fiber/v2"
)

type companyApiController struct {
	controllers.BaseAPIController
}

func InitCompanyApiRouters(app *fiber.App) {
	controller := companyApiController{}
	app.Route("company", func(router fiber.Router) {
		router.Get("", controller.get)
		router.Use(middleware.CompanyAdminRequired())
		router.Put("", controller.update)
		router.Put("deactivate", controller.deactivate)
	})
}

// @Summary Профиль компании
// @Tags Компания
// @Description Профиль компании
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response{data=companyapimodels.CompanyView}
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/company [get]
func (c *companyApiController) get(ctx *fiber.Ctx) error {
	resp, err := companyhandler.Instance.Get(middleware.GetUserCompany(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка получения компании")
	}
	if resp == nil {
		return c.SendNotFound(ctx, "компания не найдена")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Изменение профиля компании
// @Tags Компания
// @Description Изменение профиля компании, только администратор
// @Param   Authorization		header		string	true	"Authorization token"
// @Param	body body	 companyapimodels.CompanyData	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/company [put]
func (c *companyApiController) update(ctx *fiber.Ctx) error {
	var payload companyapimodels.CompanyData
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	err := companyhandler.Instance.Update(middleware.GetUserCompany(ctx), payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка изменения компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}

// @Summary Блокировка компании
// @Tags Компания
// @Description Блокировка компании, после блокировки вход для пользователей компании недоступен
// @Param   Authorization		header		string	true	"Authorization token"
// @Success 200 {object} apimodels.Response
// @Failure 403
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/company/deactivate [put]
func (c *companyApiController) deactivate(ctx *fiber.Ctx) error {
	err := companyhandler.Instance.Deactivate(middleware.GetUserCompany(ctx))
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка блокировки компании")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
