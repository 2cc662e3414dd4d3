package fiberlog

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const (
	TagPid     = "pid"
	TagLatency = "latency"
	TagStatus  = "status"
	TagMethod  = "method"
	TagPath    = "path"
	TagRoute   = "route"
	TagQuery   = "query"
	TagIP      = "ip"
	TagBody    = "body"
	TagResBody = "resBody"
	TagUserID  = "user_id"
	RequestID  = "request_id"
)

// FuncTag значение поля лога для запроса
type FuncTag func(c *fiber.Ctx, d *data) interface{}

type data struct {
	pid   int
	start time.Time
	end   time.Time
}

func getFuncTagMap(cfg Config, pid int) map[string]FuncTag {
	masker := newMasker(cfg.MaskFields)
	all := map[string]FuncTag{
		TagPid: func(_ *fiber.Ctx, d *data) interface{} {
			return d.pid
		},
		TagLatency: func(_ *fiber.Ctx, d *data) interface{} {
			return d.end.Sub(d.start).String()
		},
		TagStatus: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Response().StatusCode()
		},
		TagMethod: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Method()
		},
		TagPath: func(c *fiber.Ctx, _ *data) interface{} {
			return c.Path()
		},
		TagRoute: func(c *fiber.Ctx, _ *data) interface{} {
			if r := c.Route(); r != nil {
				return r.Path
			}
			return ""
		},
		TagQuery: func(c *fiber.Ctx, _ *data) interface{} {
			return string(c.Request().URI().QueryString())
		},
		TagIP: func(c *fiber.Ctx, _ *data) interface{} {
			return c.IP()
		},
		TagBody: func(c *fiber.Ctx, _ *data) interface{} {
			if !isJSON(string(c.Request().Header.ContentType())) {
				return ""
			}
			return truncate(masker.mask(string(c.Body())), cfg.MaxBodyLen)
		},
		TagResBody: func(c *fiber.Ctx, _ *data) interface{} {
			if !isJSON(string(c.Response().Header.ContentType())) {
				return ""
			}
			return truncate(masker.mask(string(c.Response().Body())), cfg.MaxBodyLen)
		},
		TagUserID: func(c *fiber.Ctx, _ *data) interface{} {
			token, ok := c.Locals("user").(*jwt.Token)
			if !ok || token == nil {
				return ""
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return ""
			}
			sub, _ := claims["sub"].(string)
			return sub
		},
		RequestID: func(c *fiber.Ctx, _ *data) interface{} {
			if id := c.GetRespHeader(fiber.HeaderXRequestID); id != "" {
				return id
			}
			return c.Get(fiber.HeaderXRequestID)
		},
	}
	result := make(map[string]FuncTag, len(cfg.Tags))
	for _, tag := range cfg.Tags {
		if ft, ok := all[tag]; ok {
			result[tag] = ft
		}
	}
	return result
}

func isJSON(contentType string) bool {
	return strings.HasPrefix(contentType, fiber.MIMEApplicationJSON)
}

func truncate(value string, maxLen int) string {
	if maxLen <= 0 || len(value) <= maxLen {
		return value
	}
	return value[:maxLen] + "..."
}

type masker struct {
	re *regexp.Regexp
}

func newMasker(fields []string) masker {
	if len(fields) == 0 {
		return masker{}
	}
	quoted := make([]string, 0, len(fields))
	for _, field := range fields {
		quoted = append(quoted, regexp.QuoteMeta(field))
	}
	return masker{re: regexp.MustCompile(`("(?:` + strings.Join(quoted, "|") + `)"\s*:\s*)"[^"]*"`)}
}

func (m masker) mask(body string) string {
	if m.re == nil || body == "" {
		return body
	}
	return m.re.ReplaceAllString(body, `$1"***"`)
}
