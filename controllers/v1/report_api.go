package apiv1

import (
	"github.com/gofiber/fiber/v2"
	"mock-interview-backend/controllers"
	interviewhandler "mock-interview-backend/lib/interview"
	"mock-interview-backend/middleware"
	apimodels "mock-interview-backend/models/api"
	interviewapimodels "mock-interview-backend/models/api/interview"
)

type reportApiController struct {
	controllers.BaseAPIController
}

func InitReportApiRouters(app *fiber.App) {
	controller := reportApiController{}
	app.Route("report", func(router fiber.Router) {
		router.Get("", controller.report)
		router.Get("pdf", controller.reportPDF)
		router.Get("xlsx", controller.reportXLSX)
		router.Post("email", controller.sendReport)
	})
}

// @Summary Отчет по интервью
// @Tags Отчет
// @Description Получить ответы кандидата и оценки, интервью переводится в FINISHED
// @Success 200 {object} apimodels.Response{data=interviewapimodels.ReportResponse}
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report [get]
func (c *reportApiController) report(ctx *fiber.Ctx) error {
	resp, err := interviewhandler.Instance.GetReport(ctx.UserContext(), middleware.GetSessionID(ctx))
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(resp))
}

// @Summary Отчет по интервью в PDF
// @Tags Отчет
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/pdf [get]
func (c *reportApiController) reportPDF(ctx *fiber.Ctx) error {
	file, err := interviewhandler.Instance.ReportPDF(ctx.UserContext(), middleware.GetSessionID(ctx))
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return c.SendFile(ctx, "application/pdf", "interview_report.pdf", file)
}

// @Summary Отчет по интервью в Excel
// @Tags Отчет
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/xlsx [get]
func (c *reportApiController) reportXLSX(ctx *fiber.Ctx) error {
	file, err := interviewhandler.Instance.ReportXLSX(ctx.UserContext(), middleware.GetSessionID(ctx))
	if err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return c.SendFile(ctx, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "interview_report.xlsx", file)
}

// @Summary Отправить отчет на почту
// @Tags Отчет
// @Param	body				body		interviewapimodels.SendReportRequest	true	"request body"
// @Success 200 {object} apimodels.Response
// @Failure 400 {object} apimodels.Response
// @Failure 500 {object} apimodels.Response
// @router /api/v1/report/email [post]
func (c *reportApiController) sendReport(ctx *fiber.Ctx) error {
	var payload interviewapimodels.SendReportRequest
	if err := c.BodyParser(ctx, &payload); err != nil {
		return c.SendError(ctx, fiber.StatusBadRequest, err)
	}
	if err := payload.Validate(); err != nil {
		return c.SendError(ctx, fiber.StatusBadRequest, err)
	}
	if err := interviewhandler.Instance.SendReport(ctx.UserContext(), middleware.GetSessionID(ctx), payload.Email); err != nil {
		return c.SendError(ctx, errorStatus(err), err)
	}
	return ctx.Status(fiber.StatusOK).JSON(apimodels.NewResponse(nil))
}
