package fiberlog

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T) (*fiber.App, *test.Hook) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(log.DebugLevel)
	app := fiber.New()
	app.Use(New(Config{
		Logger:     logger,
		Tags:       []string{TagStatus, TagMethod, TagPath, TagBody, TagResBody},
		MaskFields: []string{"password"},
		MaxBodyLen: 1024,
	}))
	app.Post("/login", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"token": "abc"})
	})
	app.Get("/fail", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "boom"})
	})
	app.Get("/missing", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
	return app, hook
}

func TestLoggerMasksBody(t *testing.T) {
	app, hook := newTestApp(t)
	req := httptest.NewRequest(fiber.MethodPost, "/login",
		strings.NewReader(`{"email":"admin@techsolutions.com","password":"secret123"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	require.Equal(t, log.InfoLevel, entry.Level)
	require.Equal(t, "запрос api POST /login", entry.Message)
	body, ok := entry.Data[TagBody].(string)
	require.True(t, ok)
	require.NotContains(t, body, "secret123")
	require.Contains(t, body, `"password":"***"`)
	require.Contains(t, body, "admin@techsolutions.com")
	require.Equal(t, `{"token":"abc"}`, entry.Data[TagResBody])
}

func TestLoggerLevelByStatus(t *testing.T) {
	app, hook := newTestApp(t)
	_, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/fail", nil))
	require.NoError(t, err)
	require.Equal(t, log.ErrorLevel, hook.LastEntry().Level)
	require.Equal(t, fiber.StatusInternalServerError, hook.LastEntry().Data[TagStatus])

	_, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	require.Equal(t, log.WarnLevel, hook.LastEntry().Level)
}

func TestMasker(t *testing.T) {
	m := newMasker([]string{"password", "refresh_token"})
	require.Equal(t, `{"password": "***","name":"x"}`, m.mask(`{"password": "qwerty","name":"x"}`))
	require.Equal(t, `{"refresh_token":"***"}`, m.mask(`{"refresh_token":"a.b.c"}`))
	require.Equal(t, "", m.mask(""))
	require.Equal(t, "plain", newMasker(nil).mask("plain"))
	require.Equal(t, "abc...", truncate("abcdef", 3))
}
