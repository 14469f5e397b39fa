package echoServer

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"locallibrary/util/errs"
)

// ErrorHandler renders every failure that reaches the boundary with the
// error view. detail exposes the underlying error text and is meant for
// non-production deployments.
func ErrorHandler(log *slog.Logger, detail bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		msg := http.StatusText(status)

		var he *echo.HTTPError
		switch {
		case errors.As(err, &he):
			status = he.Code
			msg = fmt.Sprint(he.Message)
		case errs.Code(err) == errs.ErrNotFound:
			status = http.StatusNotFound
			msg = err.Error()
		case errs.Code(err) == errs.ErrNotImplemented:
			status = http.StatusNotImplemented
			msg = err.Error()
		}

		if status >= http.StatusInternalServerError && status != http.StatusNotImplemented && log != nil {
			log.Error("request failed",
				"err", err,
				"status", status,
				"req_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"path", c.Path(),
				"method", c.Request().Method,
			)
		}

		data := echo.Map{"Title": msg, "Status": status, "Message": msg}
		if detail {
			data["Detail"] = err.Error()
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		if rerr := c.Render(status, "error", data); rerr != nil {
			_ = c.String(status, msg)
		}
	}
}
