package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/investarise/summit-api/internal/application/dto"
	"github.com/investarise/summit-api/pkg/jwt"
)

// Locals keys en Fiber.
const (
	LocalUserID    = "user_id"
	LocalEmail     = "email"
	LocalTokenKind = "token_kind"
)

// AuthMiddleware valida el Bearer Token JWT y extrae los claims a c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}
		claims, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		c.Locals(LocalUserID, claims.UserID)
		c.Locals(LocalEmail, claims.Email)
		c.Locals(LocalTokenKind, claims.Kind)
		return c.Next()
	}
}

// RequireAccess exige un token de sesión normal; rechaza tokens de recuperación.
// Debe usarse DESPUÉS de AuthMiddleware.
func RequireAccess() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetTokenKind(c) != jwt.KindAccess {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "este token no autoriza la operación"})
		}
		return c.Next()
	}
}

// adminChecker contrato mínimo para verificar membresía en la tabla admins.
// Lo implementa *usecase del panel vía el repositorio; la interfaz evita el
// import circular y permite un fake en tests.
type adminChecker interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// RequireAdmin devuelve un middleware que verifica si el usuario del token
// está en la tabla admins. Debe usarse DESPUÉS de AuthMiddleware.
//
// Comportamiento:
//   - 401 → sin user_id en el contexto (sesión ausente).
//   - 403 → sesión válida pero el usuario no es admin ("access denied").
//   - 503 → fallo de infraestructura al consultar la tabla.
func RequireAdmin(checker adminChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := GetUserID(c)
		if userID == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "NOT_AUTHENTICATED",
				Message: "sesión requerida",
			})
		}
		isAdmin, err := checker.IsAdmin(c.Context(), userID)
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{
				Code:    "ADMIN_CHECK_FAILED",
				Message: "no se pudo verificar la autorización, intente más tarde",
			})
		}
		if !isAdmin {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:    "NOT_AUTHORIZED",
				Message: "acceso denegado",
			})
		}
		return c.Next()
	}
}

// GetUserID devuelve el UserID del contexto (después del middleware de auth).
func GetUserID(c *fiber.Ctx) string {
	return localString(c, LocalUserID)
}

// GetEmail devuelve el email del contexto (después del middleware de auth).
func GetEmail(c *fiber.Ctx) string {
	return localString(c, LocalEmail)
}

// GetTokenKind devuelve el tipo de token ("access" o "recovery").
func GetTokenKind(c *fiber.Ctx) string {
	return localString(c, LocalTokenKind)
}

func localString(c *fiber.Ctx, key string) string {
	v := c.Locals(key)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
