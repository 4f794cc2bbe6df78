package site

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"burokrat-site/domain/catalog"
	"burokrat-site/domain/content"
	"burokrat-site/pages"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	g "maragu.dev/gomponents"
)

func newHandler(t *testing.T) *Handler {
	t.Helper()
	store := content.NewStore(content.FileLoader{Dir: "../../data"}, content.WithLogger(logger.Nop()))
	require.NoError(t, store.Init())
	return NewHandler(pages.New(store, catalog.NewMemory()))
}

func newContext(method, path string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestPage(t *testing.T) {
	h := newHandler(t)
	c, rec := newContext(http.MethodGet, "/x")

	err := h.Page("x", func(context.Context) (*pages.Page, error) {
		return &pages.Page{Title: "Проверка", Body: []g.Node{g.Text("тело страницы")}}, nil
	})(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<title>Проверка</title>")
	assert.Contains(t, rec.Body.String(), "тело страницы")
}

func TestPage_ComposeErrorIsReturned(t *testing.T) {
	h := newHandler(t)
	c, rec := newContext(http.MethodGet, "/x")
	boom := apperrors.NewContentLoad("main_page", errors.New("boom"))

	err := h.Page("x", func(context.Context) (*pages.Page, error) { return nil, boom })(c)

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, rec.Body.Len())
}

func TestNotFoundHandler(t *testing.T) {
	h := newHandler(t)
	c, _ := newContext(http.MethodGet, "/missing")

	err := h.NotFoundHandler(c)
	assert.True(t, apperrors.HasCode(err, apperrors.ErrCodePageNotFound))
}

func TestRenderError(t *testing.T) {
	h := newHandler(t)

	c, rec := newContext(http.MethodGet, "/missing")
	require.NoError(t, h.RenderError(c, http.StatusNotFound))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error-404-page")

	c, rec = newContext(http.MethodGet, "/broken")
	require.NoError(t, h.RenderError(c, http.StatusInternalServerError))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "код 500")
}

func TestContactFormHandler(t *testing.T) {
	h := newHandler(t)
	c, rec := newContext(http.MethodGet, "/contact-form")

	require.NoError(t, h.ContactFormHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `hx-post="/contact/submit"`)
}
