package catalog

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	catalogsvc "locallibrary/service/catalog"
)

type Controller struct {
	Svc catalogsvc.Service
	Log *slog.Logger
}

// GET /catalog
func (h *Controller) Index(c echo.Context) error {
	data := echo.Map{"Title": "Local Library Home"}
	counts, err := h.Svc.Counts(c.Request().Context())
	if err != nil {
		// the dashboard still renders, just without numbers
		if h.Log != nil {
			h.Log.Error("catalog counts error", "err", err)
		}
		data["Error"] = err.Error()
		return c.Render(http.StatusOK, "index", data)
	}
	data["Counts"] = counts
	return c.Render(http.StatusOK, "index", data)
}
