package middleware

import (
	"net/http"

	"burokrat-site/pkg/logger"
	"burokrat-site/utils"

	"github.com/labstack/echo/v4"
)

// AdminCookie carries the admin session token.
const AdminCookie = "admin_session"

// AdminAuthConfig configures the admin gate.
type AdminAuthConfig struct {
	Enabled   bool
	JWTSecret string
	LoginPath string
}

// AdminAuth requires a valid session cookie. Requests without one are sent to
// the login page; htmx requests get an HX-Redirect instead of a 302 so the
// whole page navigates. When Enabled is false or no secret is set, every
// request is answered with 404.
func AdminAuth(cfg AdminAuthConfig) echo.MiddlewareFunc {
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/admin/login"
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if !cfg.Enabled || cfg.JWTSecret == "" {
			return func(echo.Context) error { return echo.ErrNotFound }
		}

		return func(c echo.Context) error {
			cookie, err := c.Cookie(AdminCookie)
			if err != nil || cookie.Value == "" {
				return redirectToLogin(c, cfg.LoginPath)
			}

			claims, err := utils.ParseJWT(cfg.JWTSecret, cookie.Value)
			if err != nil {
				logger.FromContext(c.Request().Context()).WithComponent("admin_auth").
					Info("Rejected admin session", logger.Err(err))
				return redirectToLogin(c, cfg.LoginPath)
			}

			c.Set("admin", claims.Username)
			return next(c)
		}
	}
}

func redirectToLogin(c echo.Context, path string) error {
	if c.Request().Header.Get("HX-Request") == "true" {
		c.Response().Header().Set("HX-Redirect", path)
		return c.NoContent(http.StatusUnauthorized)
	}
	return c.Redirect(http.StatusSeeOther, path)
}
