package middleware

import (
	"Food-Wastage-Management/domain"
	"Food-Wastage-Management/internal/api/presenters"
	"Food-Wastage-Management/pkg/jwt"
	"Food-Wastage-Management/pkg/snapshot"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type (
	Middleware interface {
		CORSMiddleware() fiber.Handler
		AuthMiddleware(jwtService jwt.JWTService) fiber.Handler
		SessionMiddleware(registry *snapshot.Registry) fiber.Handler
	}

	middleware struct{}
)

func NewMiddleware() Middleware {
	return &middleware{}
}

func (m *middleware) CORSMiddleware() fiber.Handler {
	return cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization, " + domain.SessionHeader,
		ExposeHeaders: domain.SessionHeader,
	})
}

func (m *middleware) AuthMiddleware(jwtService jwt.JWTService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedGetToken, domain.ErrTokenNotFound)
		}
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, domain.ErrTokenInvalid)
		}

		subject, role, err := jwtService.GetSubjectByToken(token)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusUnauthorized, domain.MessageFailedTokenInvalid, err)
		}
		if role != domain.RoleAdmin {
			return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
		}

		c.Locals("user_id", subject)
		c.Locals("role", role)
		return c.Next()
	}
}

// SessionMiddleware resolves the caller's snapshot cache. Requests without
// the session header share one cache; a header must name a session issued by
// POST /api/v1/sessions.
func (m *middleware) SessionMiddleware(registry *snapshot.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get(domain.SessionHeader)
		if raw == "" {
			c.Locals("session", registry.Shared())
			return c.Next()
		}

		id, err := snapshot.ParseSessionID(raw)
		if err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedProcessRequest, err)
		}
		cache, err := registry.Session(id)
		if err != nil {
			return presenters.ErrorResponse(c, presenters.StatusFor(err), domain.MessageFailedProcessRequest, err)
		}
		c.Set(domain.SessionHeader, id.String())
		c.Locals("session", cache)
		return c.Next()
	}
}
