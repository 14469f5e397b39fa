package bookinstance

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"locallibrary/app/echoServer/controller"
	"locallibrary/app/echoServer/validation"
	"locallibrary/model"
	instancesvc "locallibrary/service/bookinstance"
	"locallibrary/util/errs"
)

type Controller struct {
	Svc instancesvc.Service
	V   *validator.Validate
	Log *slog.Logger
}

// GET /catalog/bookinstances
func (h *Controller) List(c echo.Context) error {
	rows, err := h.Svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bookinstance_list", echo.Map{"Title": "Book Instance List", "Items": rows})
}

// GET /catalog/bookinstance/:id
func (h *Controller) Detail(c echo.Context) error {
	it, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bookinstance_detail", echo.Map{"Title": "Copy: " + it.Instance.ID.Hex(), "Item": it})
}

// GET /catalog/bookinstance/create
func (h *Controller) CreateForm(c echo.Context) error {
	return h.renderForm(c, "Create BookInstance", nil, nil)
}

// POST /catalog/bookinstance/create
func (h *Controller) Create(c echo.Context) error {
	var f InstanceForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Clean()

	if err := controller.Validate(c, h.V, &f); err != nil {
		h.warn(c, err)
		return h.renderForm(c, "Create BookInstance", f.Draft(), validation.Messages(err, f))
	}
	bi, err := h.Svc.Create(c.Request().Context(), f.Input())
	if errs.Code(err) == errs.ErrValidation {
		h.warn(c, err)
		return h.renderForm(c, "Create BookInstance", bi, errs.Messages(err))
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, bi.URL())
}

// GET /catalog/bookinstance/:id/update
func (h *Controller) UpdateForm(c echo.Context) error {
	it, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return h.renderForm(c, "Update BookInstance", &it.Instance, nil)
}

// POST /catalog/bookinstance/:id/update
func (h *Controller) Update(c echo.Context) error {
	var f InstanceForm
	if err := c.Bind(&f); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	f.Clean()

	if err := controller.Validate(c, h.V, &f); err != nil {
		it, derr := h.Svc.Detail(c.Request().Context(), c.Param("id"))
		if derr != nil {
			return derr
		}
		h.warn(c, err)
		draft := f.Draft()
		draft.ID = it.Instance.ID
		return h.renderForm(c, "Update BookInstance", draft, validation.Messages(err, f))
	}
	bi, err := h.Svc.Update(c.Request().Context(), c.Param("id"), f.Input())
	if errs.Code(err) == errs.ErrValidation {
		h.warn(c, err)
		return h.renderForm(c, "Update BookInstance", bi, errs.Messages(err))
	}
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, bi.URL())
}

// GET /catalog/bookinstance/:id/delete
func (h *Controller) DeleteForm(c echo.Context) error {
	it, err := h.Svc.Detail(c.Request().Context(), c.Param("id"))
	if errs.Code(err) == errs.ErrNotFound {
		return c.Redirect(http.StatusFound, "/catalog/bookinstances")
	}
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "bookinstance_delete", echo.Map{"Title": "Delete Copy", "Item": it})
}

// POST /catalog/bookinstance/:id/delete
func (h *Controller) Delete(c echo.Context) error {
	err := h.Svc.Delete(c.Request().Context(), c.Param("id"))
	if err != nil && errs.Code(err) != errs.ErrNotFound {
		return err
	}
	return c.Redirect(http.StatusFound, "/catalog/bookinstances")
}

func (h *Controller) renderForm(c echo.Context, title string, bi *model.BookInstance, msgs []string) error {
	books, err := h.Svc.Books(c.Request().Context())
	if err != nil {
		return err
	}
	bookID, status := "", string(model.StatusAvailable)
	if bi != nil {
		if !bi.Book.IsZero() {
			bookID = bi.Book.Hex()
		}
		if bi.Status != "" {
			status = string(bi.Status)
		}
	}
	return c.Render(http.StatusOK, "bookinstance_form", echo.Map{
		"Title":    title,
		"Instance": bi,
		"BookID":   bookID,
		"Status":   status,
		"Books":    books,
		"Errors":   msgs,
	})
}

func (h *Controller) warn(c echo.Context, err error) {
	if h.Log != nil {
		h.Log.Warn("validation failed", "path", c.Path(), "err", err)
	}
}
