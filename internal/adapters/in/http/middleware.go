package http

import (
	"strings"

	"fastfeet/internal/core/domain/model/user"
	"fastfeet/internal/core/ports"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// actorContextKey stores the authenticated actor in the echo context.
const actorContextKey = "actor"

const bearerPrefix = "Bearer "

// AuthMiddleware verifies the bearer token on every request and stores the
// resulting actor in the request context. Handlers downstream work with the
// typed actor, never with raw role strings.
func AuthMiddleware(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return writeError(ctx, errs.NewUnauthorizedError("missing bearer token"))
			}

			claims, err := tokens.Verify(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				return writeError(ctx, err)
			}

			var actor user.Actor
			switch claims.Role {
			case user.RoleAdmin:
				actor, err = user.NewAdminActor(claims.UserID)
			case user.RoleCourier:
				actor, err = user.NewCourierActor(claims.UserID)
			default:
				err = errs.NewUnauthorizedError("invalid token role")
			}
			if err != nil {
				return writeError(ctx, err)
			}

			ctx.Set(actorContextKey, actor)
			return next(ctx)
		}
	}
}

// RequireAdmin rejects requests whose actor is not an admin.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := ctx.Get(actorContextKey).(user.AdminActor); !ok {
			return writeError(ctx, errs.NewOperationForbiddenError(
				ctx.Path(), "admin role required"))
		}
		return next(ctx)
	}
}

// RequireCourier rejects requests whose actor is not a courier.
func RequireCourier(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if _, ok := ctx.Get(actorContextKey).(user.CourierActor); !ok {
			return writeError(ctx, errs.NewOperationForbiddenError(
				ctx.Path(), "courier role required"))
		}
		return next(ctx)
	}
}

func courierActor(ctx echo.Context) (user.CourierActor, bool) {
	actor, ok := ctx.Get(actorContextKey).(user.CourierActor)
	return actor, ok
}

func requestActor(ctx echo.Context) (user.Actor, bool) {
	actor, ok := ctx.Get(actorContextKey).(user.Actor)
	return actor, ok
}
