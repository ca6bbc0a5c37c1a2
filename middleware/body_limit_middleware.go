package middleware

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	apimodels "mock-interview-backend/models/api"
)

// WithBodyLimit ограничивает размер тела запроса, загрузка резюме проверяется отдельным лимитом uploadLimit
func WithBodyLimit(limit, uploadLimit int64) fiber.Handler {
	return func(c *fiber.Ctx) error {
		max := limit
		if strings.HasSuffix(c.Path(), "interview/upload") {
			max = uploadLimit
		}
		contentLength := c.Get(fiber.HeaderContentLength)
		if contentLength != "" && contentLength != "0" {
			size, err := strconv.ParseInt(contentLength, 10, 64)
			if err == nil && size > max {
				return c.Status(fiber.StatusRequestEntityTooLarge).
					JSON(apimodels.NewError(fmt.Sprintf("размер запроса превышает допустимый: %d байт", max)))
			}
		}
		return c.Next()
	}
}
