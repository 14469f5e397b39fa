package genre

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer/controller"
	"locallibrary/app/echoServer/validation"
	genresvc "locallibrary/service/genre"
	"locallibrary/util/errs"
)

type Controller struct {
	Svc genresvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /catalog/genres
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "genre_list", echo.Map{"Title": "Genre List", "Genres": rows})
}

// GET /catalog/genre/:id
func (h *Controller) Detail(c echo.Context) error {
	d, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "genre_detail", echo.Map{"Title": "Genre: " + d.Genre.Name, "Detail": d})
}

// GET /catalog/genre/create
func (h *Controller) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "genre_form", echo.Map{"Title": "Create Genre", "Name": ""})
}

// POST /catalog/genre/create
func (h *Controller) Create(c echo.Context) error {
	var f GenreForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Name = validation.Sanitize(f.Name)

	if err := controller.Validate(c, h.V, &f); err != nil {
		return h.invalid(c, f.Name, validation.Messages(err, f), err)
	}
	g, created, err := h.Svc.Create(c.Request().Context(), f.Name)
	if errs.Code(err) == errs.ErrValidation {
		return h.invalid(c, f.Name, errs.Messages(err), err)
	}
	if err != nil {
		return err
	}
	if !created && h.Log != nil {
		h.Log.Info("genre exists", "name", g.Name, "id", g.ID.Hex())
	}
	return c.Redirect(http.StatusFound, g.URL())
}

// GET /catalog/genre/:id/delete
func (h *Controller) DeleteForm(c echo.Context) error {
	d, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if errs.Code(err) == errs.ErrNotFound {
		return c.Redirect(http.StatusFound, "/catalog/genres")
	}
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "genre_delete", echo.Map{"Title": "Delete Genre", "Detail": d})
}

// POST /catalog/genre/:id/delete
func (h *Controller) Delete(c echo.Context) error {
	d, err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	switch errs.Code(err) {
	case "":
		if err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/catalog/genres")
	case errs.ErrBlocked:
		return c.Render(http.StatusOK, "genre_delete", echo.Map{"Title": "Delete Genre", "Detail": d})
	case errs.ErrNotFound:
		return c.Redirect(http.StatusFound, "/catalog/genres")
	default:
		return err
	}
}

// GET|POST /catalog/genre/:id/update
func (h *Controller) Update(c echo.Context) error {
	return h.Svc.Update(c.Request().Context(), c.Param("id"))
}

func (h *Controller) invalid(c echo.Context, name string, msgs []string, err error) error {
	if h.Log != nil {
		h.Log.Warn("validation failed", "path", c.Path(), "err", err)
	}
	return c.Render(http.StatusOK, "genre_form", echo.Map{
		"Title":  "Create Genre",
		"Name":   name,
		"Errors": msgs,
	})
}
