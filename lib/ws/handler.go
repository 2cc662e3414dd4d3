package ws

import (
	wsclient "rh-hub-backend/lib/ws/client"
	connectionhub "rh-hub-backend/lib/ws/hub/connection-hub"
	"rh-hub-backend/middleware"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		if !websocket.IsWebSocketUpgrade(ctx) {
			return fiber.ErrUpgradeRequired
		}
		ctx.Locals("userID", middleware.GetUserID(ctx))
		ctx.Locals("companyID", middleware.GetUserCompany(ctx))
		ctx.Locals("jobID", ctx.Query("job_id"))
		return ctx.Next()
	})
	app.Get("/", websocket.New(boardFeedHandler))
}

// @Summary События доски вакансии
// @Tags Websocket
// @Description Перемещения кандидатов и заметки по вакансии. После подключения можно отправлять {"action":"subscribe|unsubscribe","job_id":"..."}
// @Param   Authorization		header		string		true		"Authorization token"
// @Param   job_id				query		string		false		"Идентификатор вакансии для подписки"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 401
// @Failure 426
// @router /api/v1/ws [get]
func boardFeedHandler(c *websocket.Conn) {
	userID, _ := c.Locals("userID").(string)
	companyID, _ := c.Locals("companyID").(string)
	jobID, _ := c.Locals("jobID").(string)

	clientID := uuid.NewString()
	connectionhub.Instance.AddClient(clientID, companyID, userID, c)
	defer connectionhub.Instance.DeleteClient(clientID)
	connectionhub.Instance.Subscribe(clientID, jobID)

	wsclient.NewClient(clientID, userID, c, connectionhub.Instance).Dispatch()
}
