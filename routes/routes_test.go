package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"burokrat-site/config"
	"burokrat-site/domain/admin"
	"burokrat-site/domain/catalog"
	"burokrat-site/domain/contact"
	"burokrat-site/domain/content"
	"burokrat-site/domain/email"
	"burokrat-site/domain/health"
	"burokrat-site/domain/site"
	"burokrat-site/middleware"
	"burokrat-site/pages"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGateway struct {
	mu   sync.Mutex
	sent []email.Notification
}

func (g *recordingGateway) Name() string { return "test" }

func (g *recordingGateway) Send(_ context.Context, n email.Notification) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, n)
	return nil
}

func newSite(t *testing.T, opts ...func(*Deps)) (*echo.Echo, *recordingGateway) {
	t.Helper()

	store := content.NewStore(content.FileLoader{Dir: "../data"}, content.WithLogger(logger.Nop()))
	require.NoError(t, store.Init())

	mem := catalog.NewMemory()
	_, err := catalog.NewImporter(store, mem, logger.Nop()).Import(context.Background(), true)
	require.NoError(t, err)

	composer := pages.New(store, mem)
	siteHandler := site.NewHandler(composer)
	gw := &recordingGateway{}

	e := echo.New()
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(logger.Nop(), siteHandler.RenderError)
	deps := Deps{
		Site:        siteHandler,
		Pages:       composer,
		Contact:     contact.NewHandler(contact.NewService(gw, nil, logger.Nop()), store),
		Health:      health.NewHandler("test", nil, nil),
		AssetsDir:   "../assets",
		RateLimiter: middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{MaxRequests: 5}),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	RegisterRoutes(e, deps)
	return e, gw
}

func get(e *echo.Echo, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set(echo.HeaderAccept, "text/html")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestPages(t *testing.T) {
	e, _ := newSite(t)

	tests := []struct {
		path string
		want string
	}{
		{"/", "Частые вопросы"},
		{"/about", "<!DOCTYPE html>"},
		{"/contact", "Контактная информация"},
		{"/privacy", "Политика конфиденциальности"},
		{"/privacy-statement", "Политика конфиденциальности"},
		{"/privacy-statemnt", "Политика конфиденциальности"},
		{"/agreement", "Реквизиты"},
		{"/clients", `id="delivery"`},
		{"/products-and-services", "Ручка шариковая Parker Jotter"},
		{"/featured-products", "Акварель художественная, 24 цвета"},
		{"/seals-and-stamps", "Печать для ООО"},
		{"/self-inking-stamps", "Trodat 4642"},
		{"/stationery", "Бумага и блокноты"},
		{"/engraving", "Лазерная гравировка"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(e, tt.path)
			require.Equal(t, http.StatusOK, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
			assert.Contains(t, rec.Body.String(), tt.want)
		})
	}
}

func TestProductsPage_ListsActiveProducts(t *testing.T) {
	e, _ := newSite(t)

	body := get(e, "/products-and-services").Body.String()
	assert.Equal(t, 9, strings.Count(body, `data-product-id="`))
	assert.Contains(t, body, `data-category="notebooks-journals"`)
	assert.Contains(t, body, "$1490.00")
}

func TestFeaturedPage_OnlyFeatured(t *testing.T) {
	e, _ := newSite(t)

	body := get(e, "/featured-products").Body.String()
	assert.Equal(t, 4, strings.Count(body, `data-product-id="`))
	assert.NotContains(t, body, "Степлер")
}

func TestNotFound(t *testing.T) {
	e, _ := newSite(t)

	rec := get(e, "/no-such-page")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error-404-page")

	rec = get(e, "/admin/submissions")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminRoutes_RequireAuthMiddleware(t *testing.T) {
	withAdmin := func(d *Deps) {
		d.Admin = admin.NewHandler(nil, d.Pages, config.Admin{Username: "admin"})
	}
	paths := []string{"/admin/login", "/admin/submissions", "/admin/submissions/1"}

	e, _ := newSite(t, withAdmin)
	for _, path := range paths {
		assert.Equal(t, http.StatusNotFound, get(e, path).Code, path)
	}

	e, _ = newSite(t, withAdmin, func(d *Deps) {
		d.AdminAuth = middleware.AdminAuth(middleware.AdminAuthConfig{Enabled: true, JWTSecret: "test-secret"})
	})
	assert.Equal(t, http.StatusOK, get(e, "/admin/login").Code)
	rec := get(e, "/admin/submissions")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/login", rec.Header().Get(echo.HeaderLocation))
}

func TestAPIHealth(t *testing.T) {
	e, _ := newSite(t)

	rec := get(e, "/api/health")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestAssets(t *testing.T) {
	e, _ := newSite(t)

	rec := get(e, "/assets/styles/main.css")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = get(e, "/favicon.ico")
	assert.Equal(t, http.StatusMovedPermanently, rec.Code)
	assert.Equal(t, "/assets/images/icon.png", rec.Header().Get(echo.HeaderLocation))
}

func TestContactFormFragment(t *testing.T) {
	e, _ := newSite(t)

	rec := get(e, "/contact-form")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, strings.HasPrefix(rec.Body.String(), "<!DOCTYPE html>"))
	assert.Contains(t, rec.Body.String(), "modal-overlay")
	assert.Contains(t, rec.Body.String(), `name="consent"`)
}

func TestContactSubmit(t *testing.T) {
	e, gw := newSite(t)

	post := func(form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/contact/submit", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		req.Header.Set("HX-Request", "true")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec
	}

	rec := post(url.Values{})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-field="name"`)
	assert.Contains(t, rec.Body.String(), "Вы должны согласиться с условиями")
	assert.Empty(t, gw.sent)

	rec = post(url.Values{
		"name":    {"Анна"},
		"email":   {"anna@example.ru"},
		"message": {"Нужна печать"},
		"consent": {"on"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ваше сообщение получено, Анна.")
	require.Len(t, gw.sent, 1)
	assert.Equal(t, "anna@example.ru", gw.sent[0].Email)
}
