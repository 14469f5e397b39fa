package echoServer

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"locallibrary/app/echoServer/jwtx"
	authsvc "locallibrary/service/auth"
	jwtutil "locallibrary/util/jwt"
)

func RegisterMiddlewares(e *echo.Echo) {

	e.Use(middleware.Recover())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	e.Use(Slog())
}

func Slog() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// let the error handler write the status before logging it
				c.Error(err)
			}
			lat := time.Since(start).Milliseconds()

			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			slog.Info("http",
				"method", c.Request().Method,
				"path", c.Path(),
				"status", c.Response().Status,
				"latency_ms", lat,
				"req_id", rid,
				"ip", c.RealIP(),
				"ua", c.Request().UserAgent(),
			)
			return nil
		}
	}
}

// SessionToken verifies the session cookie when present. A missing or bad
// token leaves the request anonymous instead of failing it.
func SessionToken(secret string) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		TokenLookup: "cookie:" + jwtx.SessionCookie,
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			return jwtutil.Parse(auth, secret)
		},
		ErrorHandler:           func(c echo.Context, err error) error { return nil },
		ContinueOnIgnoredError: true,
	})
}

// Identify resolves the session named by the cookie token and stores the
// request's Identity. Must run after SessionToken.
func Identify(svc authsvc.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid, err := jwtx.SessionIDFromContext(c)
			if err != nil {
				jwtx.SetIdentity(c, jwtx.Identity{})
				return next(c)
			}
			sess, err := svc.Resume(c.Request().Context(), sid)
			if err != nil {
				return err
			}
			if sess == nil {
				jwtx.SetIdentity(c, jwtx.Identity{})
				return next(c)
			}
			jwtx.SetIdentity(c, jwtx.Identity{
				State:     jwtx.Authenticated,
				UserID:    sess.UserID.Hex(),
				Email:     sess.Email,
				SessionID: sess.ID,
			})
			return next(c)
		}
	}
}

// RequireAuth sends anonymous requests to the login form.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !jwtx.IdentityFromContext(c).IsAuthenticated() {
				return c.Redirect(http.StatusFound, "/login")
			}
			return next(c)
		}
	}
}

// AnonymousOnly keeps signed-in users away from the login and signup forms.
func AnonymousOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if jwtx.IdentityFromContext(c).IsAuthenticated() {
				return c.Redirect(http.StatusFound, "/catalog")
			}
			return next(c)
		}
	}
}
