package author

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer/controller"
	"locallibrary/app/echoServer/validation"
	authorsvc "locallibrary/service/author"
	"locallibrary/util/errs"
)

type Controller struct {
	Svc authorsvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /catalog/authors
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "author_list", echo.Map{"Title": "Author List", "Authors": rows})
}

// GET /catalog/author/:id
func (h *Controller) Detail(c echo.Context) error {
	d, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "author_detail", echo.Map{"Title": d.Author.Name(), "Detail": d})
}

// GET /catalog/author/create
func (h *Controller) CreateForm(c echo.Context) error {
	return c.Render(http.StatusOK, "author_form", echo.Map{"Title": "Create Author", "Author": AuthorForm{}})
}

// POST /catalog/author/create
func (h *Controller) Create(c echo.Context) error {
	var f AuthorForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Clean()

	if err := controller.Validate(c, h.V, &f); err != nil {
		return h.invalid(c, f, validation.Messages(err, f), err)
	}
	a, err := h.Svc.Create(c.Request().Context(), f.Input())
	if errs.Code(err) == errs.ErrValidation {
		return h.invalid(c, f, errs.Messages(err), err)
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, a.URL())
}

// GET /catalog/author/:id/delete
func (h *Controller) DeleteForm(c echo.Context) error {
	d, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if errs.Code(err) == errs.ErrNotFound {
		return c.Redirect(http.StatusFound, "/catalog/authors")
	}
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "author_delete", echo.Map{"Title": "Delete Author", "Detail": d})
}

// POST /catalog/author/:id/delete
func (h *Controller) Delete(c echo.Context) error {
	d, err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	switch errs.Code(err) {
	case "":
		if err != nil {
			return err
		}
		return c.Redirect(http.StatusFound, "/catalog/authors")
	case errs.ErrBlocked:
		return c.Render(http.StatusOK, "author_delete", echo.Map{"Title": "Delete Author", "Detail": d})
	case errs.ErrNotFound:
		return c.Redirect(http.StatusFound, "/catalog/authors")
	default:
		return err
	}
}

// GET|POST /catalog/author/:id/update
func (h *Controller) Update(c echo.Context) error {
	return h.Svc.Update(c.Request().Context(), c.Param("id"))
}

func (h *Controller) invalid(c echo.Context, f AuthorForm, msgs []string, err error) error {
	if h.Log != nil {
		h.Log.Warn("validation failed", "path", c.Path(), "err", err)
	}
	return c.Render(http.StatusOK, "author_form", echo.Map{
		"Title":  "Create Author",
		"Author": f,
		"Errors": msgs,
	})
}
