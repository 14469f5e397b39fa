// Package controller holds helpers shared by the entity controllers.
package controller

import (
	"net/http"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"
)

const flashCookie = "flash"

// SetFlash stores msg for the next form render.
func SetFlash(c echo.Context, msg string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(msg),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlash returns the pending flash message, if any, and clears it.
func TakeFlash(c echo.Context) string {
	ck, err := c.Cookie(flashCookie)
	if err != nil || ck.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookie,
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
	})
	msg, err := url.QueryUnescape(ck.Value)
	if err != nil {
		return ""
	}
	return msg
}
