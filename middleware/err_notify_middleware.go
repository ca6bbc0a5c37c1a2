package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	log "github.com/sirupsen/logrus"
)

var notifyClient = &http.Client{Timeout: 5 * time.Second}

// ErrNotify отправляет на addr уведомление о каждом ответе 5xx
func ErrNotify(addr string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := c.Next()
		statusCode := c.Response().StatusCode()
		if statusCode < http.StatusInternalServerError {
			return err
		}

		var data struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}
		if unmErr := json.Unmarshal(c.Response().Body(), &data); unmErr != nil {
			log.WithError(unmErr).Warn("не удалось разобрать тело ответа для уведомления об ошибке")
		}
		msg := data.Message
		if msg == "" {
			msg = string(c.Response().Body())
		}

		// строки из запроса копируются, контекст переиспользуется после выхода из обработчика
		method := utils.CopyString(c.Method())
		path := utils.CopyString(c.OriginalURL())
		if r := c.Route(); r != nil {
			path = r.Path
		}
		session := utils.CopyString(GetSessionID(c))

		go func() {
			payload := fmt.Sprintf(
				`{"code":%d,"method":%q,"path":%q,"session":%q,"error":%q}`,
				statusCode, method, path, session, msg)
			resp, reqErr := notifyClient.Post(addr, fiber.MIMEApplicationJSON, strings.NewReader(payload))
			if reqErr != nil {
				log.WithError(reqErr).Warn("ошибка отправки уведомления об ошибке")
				return
			}
			resp.Body.Close()
		}()
		return err
	}
}
