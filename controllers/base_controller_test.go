package controllers

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestGetParam(t *testing.T) {
	c := BaseAPIController{}
	app := fiber.New()
	app.Get("/job/:id", func(ctx *fiber.Ctx) error {
		id, err := c.GetID(ctx)
		if err != nil {
			return c.SendBadRequest(ctx, err.Error())
		}
		return ctx.SendString(id)
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/job/6f1c2a8e-3b7d-4e59-9a1f-2c4b8d0e7a11", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/job/not-a-uuid", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
