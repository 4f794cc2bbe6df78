// Package view writes markup trees to HTTP responses.
package view

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

// HTML renders n into a buffer first so a failing render never leaves a half-written body.
func HTML(c echo.Context, status int, n g.Node) error {
	var buf bytes.Buffer
	if err := n.Render(&buf); err != nil {
		return err
	}
	return c.HTMLBlob(status, buf.Bytes())
}

// Page renders a full document with the HTML5 doctype.
func Page(c echo.Context, status int, doc g.Node) error {
	return HTML(c, status, g.Group{g.Raw("<!DOCTYPE html>"), doc})
}

// String renders n to a string.
func String(n g.Node) (string, error) {
	var b strings.Builder
	if err := n.Render(&b); err != nil {
		return "", err
	}
	return b.String(), nil
}

// IsHTMX reports whether the request was issued by htmx.
func IsHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}

// Fragment renders a partial with 200, the status htmx swaps by default.
func Fragment(c echo.Context, n g.Node) error {
	return HTML(c, http.StatusOK, n)
}
