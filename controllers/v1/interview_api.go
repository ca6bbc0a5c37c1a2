package apiv1

import (
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"mock-interview-backend/controllers"
	interviewhandler "mock-interview-backend/lib/interview"
	"mock-interview-backend/middleware"
	apimodels "mock-interview-backend/models/api"
	interviewapimodels "mock-interview-backend/models/api/interview"
)

type interviewApiController struct {
	controllers.BaseAPIController
	cookieName string
	sessionTTL time.Duration
}

func InitInterviewApiRouters(app *fiber.App, cookieName string, sessionTTL time.Duration) {
	controller := interviewApiController{
		cookieName: cookieName,
		sessionTTL: sessionTTL,
	}
	app.Route("interview", func(router fiber.Router) {
		router.Post("upload", controller.upload)
		router.Post("start", controller.start)
		router.Post("next_step", controller.nextStep)
		router.Get("state", controller.state)
		router.Delete("", controller.clear)
	})
}

// @Summary Загрузить резюме и создать интервью
// @Tags Интервью
// @Description Загрузить резюме (pdf, docx), сгенерировать вопросы и создать сессию интервью
// @Accept multipart/form-data
// @Param   resume				formData	file	true	"файл резюме"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.CreateResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/upload [post]
func (c *interviewApiController) upload(ctx *fiber.Ctx) error {
	fileHeader, err := ctx.FormFile("resume")
	if err != nil {
		return c.SendError(ctx, fiber.StatusBadRequest, errors.New("файл резюме не передан"))
	}
	file, err := fileHeader.Open()
	if err != nil {
		log.WithError(err).Error("ошибка открытия файла резюме")
		return c.SendError(ctx, fiber.StatusBadRequest, errors.New("не удалось прочитать файл резюме"))
	}
	defer file.Close()
	content, err := io.ReadAll(file)
	if err != nil {
		log.WithError(err).Error("ошибка чтения файла резюме")
		return c.SendError(ctx, fiber.StatusBadRequest, errors.New("не удалось прочитать файл резюме"))
	}

	resp, err := interviewhandler.Instance.CreateSession(ctx.UserContext(), middleware.GetSessionID(ctx), fileHeader.Filename, content)
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	middleware.SetSessionCookie(ctx, c.cookieName, resp.SessionID, c.sessionTTL)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Начать интервью
// @Tags Интервью
// @Description Получить приветствие интервьюера
// @Success 200 {object} apimodels.Response{data=interviewapimodels.StepResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/start [post]
func (c *interviewApiController) start(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.Start(ctx.UserContext(), middleware.GetSessionID(ctx))
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Следующий шаг интервью
// @Tags Интервью
// @Description Передать реплику кандидата и получить следующую реплику интервьюера
// @Param	body				body		interviewapimodels.StepRequest	true	"request body"
// @Success 200 {object} apimodels.Response{data=interviewapimodels.StepResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/next_step [post]
func (c *interviewApiController) nextStep(ctx *fiber.Ctx) error {
	var payload interviewapimodels.StepRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, fiber.StatusBadRequest, err)
	}
	payload.Normalize()
	resp, err := interviewhandler.Instance.NextStep(ctx.UserContext(), middleware.GetSessionID(ctx), payload.Text)
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Состояние интервью
// @Tags Интервью
// @Success 200 {object} apimodels.Response{data=interviewapimodels.StateResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview/state [get]
func (c *interviewApiController) state(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.GetState(ctx.UserContext(), middleware.GetSessionID(ctx))
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Завершить сессию интервью
// @Tags Интервью
// @Success 200
// @Failure 409 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/interview [delete]
func (c *interviewApiController) clear(ctx *fiber.Ctx) error {
	if err := interviewhandler.Instance.Clear(ctx.UserContext(), middleware.GetSessionID(ctx)); err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	middleware.ClearSessionCookie(ctx, c.cookieName)
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
