package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/socialweb-app/backend/internal/repositories"
	"github.com/socialweb-app/backend/internal/session"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "sw_session"

// ContextUserKey is where the resolved acting user is stored on the context.
const ContextUserKey = "currentUser"

// SessionAuth resolves the acting user from the session token. Requests
// without a valid session get a 401 on the JSON API and a redirect to the
// login page everywhere else.
func SessionAuth(sessions *session.Store, users repositories.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := sessions.Get(c.Request().Context(), tokenFrom(c))
			if err != nil || identity.Username == "" {
				return reject(c)
			}

			user, err := users.GetUserByUsername(identity.Username)
			if err != nil {
				return reject(c)
			}

			c.Set(ContextUserKey, user)
			return next(c)
		}
	}
}

func tokenFrom(c echo.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get("Authorization")
	if parts := strings.SplitN(authHeader, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}

func reject(c echo.Context) error {
	if strings.HasPrefix(c.Path(), "/api") {
		return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return c.Redirect(http.StatusFound, "/login")
}
