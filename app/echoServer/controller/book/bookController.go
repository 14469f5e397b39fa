package book

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer/controller"
	"locallibrary/app/echoServer/validation"
	"locallibrary/model"
	booksvc "locallibrary/service/book"
	"locallibrary/util/errs"
)

type Controller struct {
	Svc booksvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /catalog/books
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_list", echo.Map{"Title": "Book List", "Books": rows})
}

// GET /catalog/book/:id
func (h *Controller) Detail(c echo.Context) error {
	d, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_detail", echo.Map{"Title": d.Book.Title, "Detail": d})
}

// GET /catalog/book/create
func (h *Controller) CreateForm(c echo.Context) error {
	return h.renderForm(c, http.StatusOK, "Create Book", nil, nil)
}

// POST /catalog/book/create
func (h *Controller) Create(c echo.Context) error {
	var f BookForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Clean()

	if err := controller.Validate(c, h.V, &f); err != nil {
		h.warn(c, err)
		return h.renderForm(c, http.StatusOK, "Create Book", f.Draft(), validation.Messages(err, f))
	}
	b, err := h.Svc.Create(c.Request().Context(), f.Input())
	if errs.Code(err) == errs.ErrValidation {
		h.warn(c, err)
		return h.renderForm(c, http.StatusOK, "Create Book", b, errs.Messages(err))
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, b.URL())
}

// GET /catalog/book/:id/update
func (h *Controller) UpdateForm(c echo.Context) error {
	d, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return h.renderForm(c, http.StatusOK, "Update Book", &d.Book, nil)
}

// POST /catalog/book/:id/update
func (h *Controller) Update(c echo.Context) error {
	var f BookForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Clean()

	if err := controller.Validate(c, h.V, &f); err != nil {
		// a missing book is reported before the form
		d, derr := h.Svc.Detail(c.Request().Context(), c.Param("id"))
		if derr != nil {
			return derr
		}
		h.warn(c, err)
		draft := f.Draft()
		draft.ID = d.Book.ID
		return h.renderForm(c, http.StatusOK, "Update Book", draft, validation.Messages(err, f))
	}
	b, err := h.Svc.Update(c.Request().Context(), c.Param("id"), f.Input())
	if errs.Code(err) == errs.ErrValidation {
		h.warn(c, err)
		return h.renderForm(c, http.StatusOK, "Update Book", b, errs.Messages(err))
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, b.URL())
}

// GET /catalog/book/:id/delete
func (h *Controller) DeleteForm(c echo.Context) error {
	d, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if errs.Code(err) == errs.ErrNotFound {
		return c.Redirect(http.StatusFound, "/catalog/books")
	}
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "book_delete", echo.Map{"Title": "Delete Book", "Detail": d})
}

// POST /catalog/book/:id/delete
func (h *Controller) Delete(c echo.Context) error {
	err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil && errs.Code(err) != errs.ErrNotFound {
		return err
	}
	return c.Redirect(http.StatusFound, "/catalog/books")
}

func (h *Controller) renderForm(c echo.Context, status int, title string, b *model.Book, msgs []string) error {
	fd, err := h.Svc.FormData(c.Request().Context())
	if err != nil {
		return err
	}
	authorID := ""
	if b != nil && !b.Author.IsZero() {
		authorID = b.Author.Hex()
	}
	return c.Render(status, "book_form", echo.Map{
		"Title":    title,
		"Book":     b,
		"AuthorID": authorID,
		"Authors":  fd.Authors,
		"Genres":   fd.Genres,
		"Errors":   msgs,
	})
}

func (h *Controller) warn(c echo.Context, err error) {
	if h.Log != nil {
		h.Log.Warn("validation failed", "path", c.Path(), "err", err)
	}
}
