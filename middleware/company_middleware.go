package middleware

import (
	authutils "rh-hub-backend/lib/utils/auth-utils"
	"rh-hub-backend/models"
	apimodels "rh-hub-backend/models/api"

	"github.com/gofiber/fiber/v2"
)

func CompanyAdminRequired() fiber.Handler {
	return RolesRequired(models.CompanyAdminRole)
}

// RolesRequired пропускает только пользователей с одной из ролей
func RolesRequired(roles ...models.UserRole) fiber.Handler {
	return func(ctx *fiber.Ctx) (err error) {
		role := GetUserRole(ctx)
		for _, allowed := range roles {
			if role == allowed {
				return ctx.Next()
			}
		}
		return ctx.Status(fiber.StatusForbidden).JSON(apimodels.NewError("операция недоступна"))
	}
}

func GetUserCompany(ctx *fiber.Ctx) string {
	return claimString(ctx, "company")
}

func GetUserID(ctx *fiber.Ctx) string {
	return claimString(ctx, "sub")
}

func GetUserName(ctx *fiber.Ctx) string {
	return claimString(ctx, "name")
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	return models.UserRole(claimString(ctx, "role"))
}

func claimString(ctx *fiber.Ctx, key string) string {
	claims := authutils.GetClaims(ctx)
	if value, exist := claims[key]; exist {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}
