package auth

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer/controller"
	"locallibrary/app/echoServer/jwtx"
	"locallibrary/app/echoServer/validation"
	"locallibrary/model"
	authsvc "locallibrary/service/auth"
	"locallibrary/util/errs"
)

// msgBadLogin is shown for every failed login so the response does not
// reveal whether the email exists.
const msgBadLogin = "Invalid email or password."

type Controller struct {
	Svc authsvc.Service
	V   *validator.Validate
	Log *slog.Logger

	// TTL and Secure shape the session cookie.
	TTL    time.Duration
	Secure bool
}

// GET /signup
func (ct *Controller) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup", echo.Map{
		"Title": "Sign up",
		"Flash": controller.TakeFlash(c),
		"Email": "",
	})
}

// POST /signup
func (ct *Controller) Signup(c echo.Context) error {
	var req model.SignupReq
	if err := c.Bind(&req); err != nil {
		if ct.Log != nil {
			ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		}
		controller.SetFlash(c, "Could not read the signup form.")
		return c.Redirect(http.StatusFound, "/signup")
	}
	req.Email = strings.TrimSpace(req.Email)

	if err := controller.Validate(c, ct.V, &req); err != nil {
		if ct.Log != nil {
			ct.Log.Warn("validation failed", "path", c.Path(), "err", err)
		}
		controller.SetFlash(c, strings.Join(validation.Messages(err, req), " "))
		return c.Redirect(http.StatusFound, "/signup")
	}

	_, token, err := ct.Svc.Signup(c.Request().Context(), req)
	if err != nil {
		switch errs.Code(err) {
		case errs.ErrEmailTaken:
			controller.SetFlash(c, "That email is already taken.")
			return c.Redirect(http.StatusFound, "/signup")
		case errs.ErrBadInput:
			controller.SetFlash(c, "Email and password are required.")
			return c.Redirect(http.StatusFound, "/signup")
		default:
			return err
		}
	}

	ct.setSession(c, token)
	return c.Redirect(http.StatusFound, "/catalog")
}

// GET /login
func (ct *Controller) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", echo.Map{
		"Title": "Log in",
		"Flash": controller.TakeFlash(c),
		"Email": "",
	})
}

// POST /login
func (ct *Controller) Login(c echo.Context) error {
	var req model.LoginReq
	if err := c.Bind(&req); err != nil {
		if ct.Log != nil {
			ct.Log.Warn("bind failed", "path", c.Path(), "err", err)
		}
		controller.SetFlash(c, msgBadLogin)
		return c.Redirect(http.StatusFound, "/login")
	}

	if err := controller.Validate(c, ct.V, &req); err != nil {
		controller.SetFlash(c, msgBadLogin)
		return c.Redirect(http.StatusFound, "/login")
	}

	_, token, err := ct.Svc.Login(c.Request().Context(), req)
	if err != nil {
		switch errs.Code(err) {
		case errs.ErrInvalidCreds, errs.ErrBadInput:
			controller.SetFlash(c, msgBadLogin)
			return c.Redirect(http.StatusFound, "/login")
		default:
			return err
		}
	}

	ct.setSession(c, token)
	return c.Redirect(http.StatusFound, "/catalog")
}

// GET /logout
func (ct *Controller) Logout(c echo.Context) error {
	if sid := jwtx.IdentityFromContext(c).SessionID; sid != "" {
		if err := ct.Svc.Logout(c.Request().Context(), sid); err != nil {
			return err
		}
	}
	c.SetCookie(&http.Cookie{
		Name:     jwtx.SessionCookie,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   ct.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return c.Redirect(http.StatusFound, "/login")
}

func (ct *Controller) setSession(c echo.Context, token string) {
	c.SetCookie(&http.Cookie{
		Name:     jwtx.SessionCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   int(ct.TTL.Seconds()),
		HttpOnly: true,
		Secure:   ct.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
