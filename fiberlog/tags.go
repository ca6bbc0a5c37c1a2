package fiberlog

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

const (
	TagPid      = "pid"
	TagLatency  = "latency"
	TagStatus   = "status"
	TagMethod   = "method"
	TagPath     = "path"
	TagURL      = "url"
	TagIP       = "ip"
	TagBody     = "body"
	TagResBody  = "resBody"
	TagSession  = "session"
	RequestID   = "requestId"
	maxBodySize = 2048
)

// FuncTag returns the value logged under a tag
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func truncate(body []byte) string {
	if len(body) > maxBodySize {
		return string(body[:maxBodySize]) + "..."
	}
	return string(body)
}

func getFuncTagMap(cfg Config) map[string]FuncTag {
	all := map[string]FuncTag{
		TagPid: func(c *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(c *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, d *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, d *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, d *data) interface{} {
			return c.Path()
		},
		TagURL: func(c *fiber.Ctx, d *data) interface{} {
			return c.OriginalURL()
		},
		TagIP: func(c *fiber.Ctx, d *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, d *data) interface{} {
			// загружаемые файлы и аудио не логируем
			if c.Is("multipart") || c.Is("multipart/form-data") {
				return ""
			}
			return truncate(c.Body())
		},
		TagResBody: func(c *fiber.Ctx, d *data) interface{} {
			contentType := string(c.Response().Header.ContentType())
			if contentType != fiber.MIMEApplicationJSON && contentType != fiber.MIMEApplicationJSONCharsetUTF8 {
				return ""
			}
			return truncate(c.Response().Body())
		},
		TagSession: func(c *fiber.Ctx, d *data) interface{} {
			if id, ok := c.Locals(TagSession).(string); ok {
				return id
			}
			return ""
		},
		RequestID: func(c *fiber.Ctx, d *data) interface{} {
			return c.GetRespHeader(fiber.HeaderXRequestID)
		},
	}
	ftm := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			ftm[tag] = ft
		}
	}
	return ftm
}
