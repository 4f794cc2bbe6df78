// Package site serves the public pages.
package site

import (
	"context"
	"net/http"

	"burokrat-site/pages"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"
	"burokrat-site/pkg/view"

	"github.com/labstack/echo/v4"
)

// ComposeFunc builds one page.
type ComposeFunc func(ctx context.Context) (*pages.Page, error)

type Handler struct {
	pages *pages.Composer
}

func NewHandler(p *pages.Composer) *Handler {
	return &Handler{pages: p}
}

// Page returns a handler that composes and wraps one page. name is the
// content page logged for the request.
func (h *Handler) Page(name string, compose ComposeFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c.Request().Context()).WithComponent("site")

		p, err := compose(c.Request().Context())
		if err != nil {
			return err
		}
		doc, err := h.pages.Document(p)
		if err != nil {
			return err
		}
		log.Debug("Serving page", logger.Page(name))
		return view.Page(c, http.StatusOK, doc)
	}
}

// ContactFormHandler serves the contact form fragment for the catalog modal.
func (h *Handler) ContactFormHandler(c echo.Context) error {
	n, err := h.pages.ContactModal(c.Request().Context())
	if err != nil {
		return err
	}
	return view.Fragment(c, n)
}

// NotFoundHandler is the catch-all for unmatched paths.
func (h *Handler) NotFoundHandler(c echo.Context) error {
	return apperrors.NewNotFound(apperrors.ErrCodePageNotFound, "Page not found")
}

// RenderError writes the styled error page for status. It is the page
// renderer of the HTTP error handler.
func (h *Handler) RenderError(c echo.Context, status int) error {
	ctx := c.Request().Context()

	var (
		p   *pages.Page
		err error
	)
	if status == http.StatusNotFound {
		p, err = h.pages.NotFound(ctx)
	} else {
		p, err = h.pages.Error(ctx, status)
	}
	if err != nil {
		return err
	}

	doc, err := h.pages.Document(p)
	if err != nil {
		return err
	}
	return view.Page(c, status, doc)
}
