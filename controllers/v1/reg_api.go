package apiv1

import (
	"rh-hub-backend/controllers"
	authhandler "rh-hub-backend/lib/auth"
	apimodels "rh-hub-backend/models/api"
	authapimodels "rh-hub-backend/models/api/auth"

	"github.com/gofiber/fiber/v2"
)

type regController struct {
	controllers.BaseAPIController
}

func InitRegRouters(app *fiber.App) {
	controller := regController{}
	app.Post("reg", controller.registration)
}

// @Summary Регистрация компании
// @Tags Регистрация компании
// @Description Создает компанию и ее администратора
// @Param	body				body		authapimodels.Registration	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/reg [post]
func (c *regController) registration(ctx *fiber.Ctx) error {
	var payload authapimodels.Registration
	if err := c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}

	if err := payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	hMsg, err := authhandler.Instance.Registration(payload)
	if err != nil {
		return c.SendError(ctx, c.GetLogger(ctx), err, "Ошибка регистрации компании")
	}
	if hMsg != "" {
		return c.SendBadRequest(ctx, hMsg)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
