package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"mock-interview-backend/fiberlog"
)

// ключ совпадает с тегом логгера, чтобы идентификатор сессии попадал в лог запроса
const sessionLocalsKey = fiberlog.TagSession

// InterviewSession кладет идентификатор сессии интервью из cookie в контекст запроса
func InterviewSession(cookieName string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// значение cookie ссылается на буфер запроса, в контекст кладется копия
		if id := ctx.Cookies(cookieName); id != "" {
			ctx.Locals(sessionLocalsKey, utils.CopyString(id))
		}
		return ctx.Next()
	}
}

func GetSessionID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals(sessionLocalsKey).(string); ok {
		return id
	}
	return ""
}

func SetSessionCookie(ctx *fiber.Ctx, cookieName, id string, ttl time.Duration) {
	ctx.Locals(sessionLocalsKey, id)
	ctx.Cookie(&fiber.Cookie{
		Name:     cookieName,
		Value:    id,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func ClearSessionCookie(ctx *fiber.Ctx, cookieName string) {
	ctx.ClearCookie(cookieName)
}
