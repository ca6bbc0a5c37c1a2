package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	apimodels "mock-interview-backend/models/api"
)

type BaseAPIController struct{}

func (c *BaseAPIController) BodyParser(ctx *fiber.Ctx, out interface{}) error {
	if err := ctx.BodyParser(out); err != nil {
		log.WithError(err).Error("ошибка распознавания запроса")
		return errors.New("не удалось получить данные из запроса")
	}
	return nil
}

func (c *BaseAPIController) SendError(ctx *fiber.Ctx, status int, err error) error {
	return ctx.Status(status).JSON(apimodels.NewError(err.Error()))
}

func (c *BaseAPIController) SendFile(ctx *fiber.Ctx, contentType, fileName string, content []byte) error {
	ctx.Set(fiber.HeaderContentType, contentType)
	if fileName != "" {
		ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+fileName+`"`)
	}
	return ctx.Status(fiber.StatusOK).Send(content)
}
