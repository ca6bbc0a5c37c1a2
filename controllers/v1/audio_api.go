package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"mock-interview-backend/controllers"
	interviewhandler "mock-interview-backend/lib/interview"
)

type audioApiController struct {
	controllers.BaseAPIController
}

func InitAudioApiRouters(app *fiber.App) {
	controller := audioApiController{}
	app.Get("audio/:filename", controller.getAudio)
}

// @Summary Аудио реплики интервьюера
// @Tags Аудио
// @Produce audio/wav
// @Param   filename			path		string	true	"имя аудио файла"
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 404 {object} apimodels.Response
// @router /api/v1/audio/{filename} [get]
func (c *audioApiController) getAudio(ctx *fiber.Ctx) error {
	data, err := interviewhandler.Instance.GetAudio(ctx.UserContext(), ctx.Params("filename"))
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return c.SendFile(ctx, "audio/wav", "", data)
}
