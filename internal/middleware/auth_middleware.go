package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"tripLogger/internal/rest"
	"tripLogger/pkg/logger"
	"tripLogger/pkg/utils"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware validates the bearer token and stores user_id (uint) on the
// echo context.
func AuthMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: "missing authorization header"})
			}

			tokenParts := strings.Fields(authHeader)
			if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: "invalid authorization format"})
			}

			claims, err := utils.ParseJWT(secret, tokenParts[1])
			if err != nil {
				logger.Debug("Rejected bearer token", err)
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: "invalid or expired token"})
			}

			userID, err := strconv.ParseUint(claims.UserID, 10, 64)
			if err != nil || userID == 0 {
				logger.Warn("Invalid user ID in token", "user_id", claims.UserID)
				return c.JSON(http.StatusUnauthorized, rest.ResponseError{Message: "invalid token subject"})
			}

			c.Set("user_id", uint(userID))

			return next(c)
		}
	}
}
