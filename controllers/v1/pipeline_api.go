package apiv1

import (
	"bytes"
	"net/url"

	"rh-hub-backend/controllers"
	"rh-hub-backend/lib/pipeline"
	pipelinehandler "rh-hub-backend/lib/pipeline/handler"
	"rh-hub-backend/lib/utils/lock"
	"rh-hub-backend/middleware"
	"rh-hub-backend/models"
	apimodels "rh-hub-backend/models/api"
	pipelineapimodels "rh-hub-backend/models/api/pipeline"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type pipelineApiController struct {
	controllers.BaseAPIController
}

func InitPipelineApiRouters(app *fiber.App) {
	controller := pipelineApiController{}
	app.Route("job/:id/pipeline", func(router fiber.Router) {
		router.Get("", controller.board)
		router.Get("stats", controller.stats)
		router.Get("export.xlsx", controller.exportXLS)
		router.Route("candidate/:candidate_id", func(candidateRoute fiber.Router) {
			candidateRoute.Get("card.pdf", controller.candidateCard)
			candidateRoute.Put("note", controller.addNote)
			candidateRoute.Use(middleware.RolesRequired(models.CompanyAdminRole, models.RecruiterRole))
			candidateRoute.Put("next", controller.moveToNext)
			candidateRoute.Put("move", controller.moveToStage)
		})
	})
}

func (c *pipelineApiController) actor(ctx *fiber.Ctx) pipelinehandler.Actor {
	return pipelinehandler.Actor{
		CompanyID: middleware.GetUserCompany(ctx),
		UserID:    middleware.GetUserID(ctx),
		UserName:  middleware.GetUserName(ctx),
	}
}

// sendPipelineError ошибки воронки в http статус
func sendPipelineError(ctx *fiber.Ctx, c *controllers.BaseAPIController, err error, msg string) error {
	switch {
	case errors.Is(err, pipelinehandler.ErrJobNotFound),
		errors.Is(err, pipeline.ErrCandidateNotFound),
		errors.Is(err, pipeline.ErrStageNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(apimodels.NewError(errors.Cause(err).Error()))
	case errors.Is(err, pipeline.ErrNoNextStage),
		errors.Is(err, pipeline.ErrDuplicateCandidate),
		errors.Is(err, pipeline.ErrDuplicateStage),
		errors.Is(err, lock.ErrBusy):
		return ctx.Status(fiber.StatusConflict).JSON(apimodels.NewError(errors.Cause(err).Error()))
	}
	return c.SendError(ctx, c.GetLogger(ctx), err, msg)
}

func sendFile(ctx *fiber.Ctx, contentType, fileName string, data []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename*=UTF-8''`+url.PathEscape(fileName))
	return ctx.SendStream(bytes.NewReader(data), len(data))
}

// @Summary Доска вакансии
// @Tags Воронка подбора
// @Description Этапы вакансии с кандидатами, последней заметкой и долей кандидатов на этапе
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BoardView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/job/{id}/pipeline [get]
func (c *pipelineApiController) board(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.Board(middleware.GetUserCompany(ctx), id)
	if err != nil {
		return sendPipelineError(ctx, &c.BaseAPIController, err, "Ошибка получения воронки подбора")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Статистика воронки
// @Tags Воронка подбора
// @Description Количество и доля кандидатов по этапам
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.StatsView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/job/{id}/pipeline/stats [get]
func (c *pipelineApiController) stats(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.Stats(middleware.GetUserCompany(ctx), id)
	if err != nil {
		return sendPipelineError(ctx, &c.BaseAPIController, err, "Ошибка получения статистики воронки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Выгрузка воронки в Excel
// @Tags Воронка подбора
// @Description Выгрузка воронки в Excel
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/job/{id}/pipeline/export.xlsx [get]
func (c *pipelineApiController) exportXLS(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, fileName, err := pipelinehandler.Instance.ExportXLS(middleware.GetUserCompany(ctx), id)
	if err != nil {
		return sendPipelineError(ctx, &c.BaseAPIController, err, "Ошибка выгрузки воронки в Excel")
	}
	return sendFile(ctx, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", fileName, data.Bytes())
}

// @Summary Карточка кандидата в PDF
// @Tags Воронка подбора
// @Description Данные кандидата, этап и все заметки
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   candidate_id   		path    string  				    	true         "candidate ID"
// @Success 200
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/job/{id}/pipeline/candidate/{candidate_id}/card.pdf [get]
func (c *pipelineApiController) candidateCard(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID, err := c.GetParam(ctx, "candidate_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	data, fileName, err := pipelinehandler.Instance.CandidateCardPDF(middleware.GetUserCompany(ctx), id, candidateID)
	if err != nil {
		return sendPipelineError(ctx, &c.BaseAPIController, err, "Ошибка формирования карточки кандидата")
	}
	return sendFile(ctx, "application/pdf", fileName, data)
}

// @Summary Перевести на следующий этап
// @Tags Воронка подбора
// @Description Перевод кандидата на следующий этап. Без stage_id берется текущий этап кандидата
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   candidate_id   		path    string  				    	true         "candidate ID"
// @Param	stage_id			query 	string							false		 "текущий этап кандидата"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BoardEvent}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/job/{id}/pipeline/candidate/{candidate_id}/next [put]
func (c *pipelineApiController) moveToNext(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID, err := c.GetParam(ctx, "candidate_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	stageID := ctx.Query("stage_id", "")
	resp, err := pipelinehandler.Instance.MoveToNext(ctx.UserContext(), c.actor(ctx), id, candidateID, stageID)
	if err != nil {
		return sendPipelineError(ctx, &c.BaseAPIController, err, "Ошибка перевода кандидата на следующий этап")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Перевести на этап
// @Tags Воронка подбора
// @Description Перевод кандидата на любой этап, в том числе назад
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   candidate_id   		path    string  				    	true         "candidate ID"
// @Param	body body	 pipelineapimodels.MoveRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.BoardEvent}
// @Failure 400 {object} apimodels.Response
// @Failure 403
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/job/{id}/pipeline/candidate/{candidate_id}/move [put]
func (c *pipelineApiController) moveToStage(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID, err := c.GetParam(ctx, "candidate_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.MoveRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.MoveToStage(ctx.UserContext(), c.actor(ctx), id, candidateID, payload)
	if err != nil {
		return sendPipelineError(ctx, &c.BaseAPIController, err, "Ошибка перевода кандидата на этап")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Добавить заметку
// @Tags Воронка подбора
// @Description Заметка добавляется в конец истории кандидата, пустая заметка игнорируется
// @Param   Authorization		header		string	true	"Authorization token"
// @Param   id          		path    string  				    	true         "job ID"
// @Param   candidate_id   		path    string  				    	true         "candidate ID"
// @Param	body body	 pipelineapimodels.NoteRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=pipelineapimodels.NotesView}
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/space/job/{id}/pipeline/candidate/{candidate_id}/note [put]
func (c *pipelineApiController) addNote(ctx *fiber.Ctx) error {
	id, err := c.GetID(ctx)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	candidateID, err := c.GetParam(ctx, "candidate_id")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	var payload pipelineapimodels.NoteRequest
	if err = c.BodyParser(ctx, &payload); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	if err = payload.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(apimodels.NewError(err.Error()))
	}
	resp, err := pipelinehandler.Instance.AddNote(ctx.UserContext(), c.actor(ctx), id, candidateID, payload.Text)
	if err != nil {
		return sendPipelineError(ctx, &c.BaseAPIController, err, "Ошибка добавления заметки")
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}
