package middleware

import (
	"io"
	"net/http/httptest"
	"rh-hub-backend/config"
	authutils "rh-hub-backend/lib/utils/auth-utils"
	"rh-hub-backend/models"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func initTestConfig() {
	config.Conf = &config.Configuration{}
	config.Conf.Auth.JWTSecret = "test-secret"
	config.Conf.Auth.JWTExpireInSec = 60
	config.Conf.Auth.JWTRefreshExpireInSec = 60
}

func testApp() *fiber.App {
	app := fiber.New()
	app.Use(AuthorizationRequired())
	app.Get("whoami", func(ctx *fiber.Ctx) error {
		return ctx.SendString(GetUserID(ctx) + "|" + GetUserCompany(ctx) + "|" + string(GetUserRole(ctx)))
	})
	app.Get("admin", CompanyAdminRequired(), func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestAuthorizationRequired(t *testing.T) {
	initTestConfig()
	app := testApp()

	t.Run("Без токена", func(t *testing.T) {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/whoami", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("Данные пользователя из токена", func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Ana", "company-1", models.RecruiterRole)
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.Equal(t, "user-1|company-1|RECRUITER", string(body))
	})
	t.Run("Токен в query", func(t *testing.T) {
		token, err := authutils.GetToken("user-1", "Ana", "company-1", models.RecruiterRole)
		require.NoError(t, err)
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/whoami?token="+token, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	})
	t.Run("Refresh token не дает доступа", func(t *testing.T) {
		token, err := authutils.GetRefreshToken("user-1", "Ana")
		require.NoError(t, err)
		req := httptest.NewRequest(fiber.MethodGet, "/whoami", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("Проверка роли", func(t *testing.T) {
		for role, status := range map[models.UserRole]int{
			models.CompanyAdminRole: fiber.StatusOK,
			models.RecruiterRole:    fiber.StatusForbidden,
			models.ManagerRole:      fiber.StatusForbidden,
		} {
			token, err := authutils.GetToken("user-1", "Ana", "company-1", role)
			require.NoError(t, err)
			req := httptest.NewRequest(fiber.MethodGet, "/admin", nil)
			req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
			resp, err := app.Test(req)
			require.NoError(t, err)
			require.Equal(t, status, resp.StatusCode, role)
		}
	})
}

func TestWithBodyLimit(t *testing.T) {
	app := fiber.New()
	app.Use(WithBodyLimit(10))
	app.Post("data", func(ctx *fiber.Ctx) error {
		return ctx.SendStatus(fiber.StatusOK)
	})
	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/data", strings.NewReader("0123456789ABC")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusRequestEntityTooLarge, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/data", strings.NewReader("short")))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}
