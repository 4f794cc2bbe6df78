package admin

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"burokrat-site/config"
	"burokrat-site/domain/contact"
	"burokrat-site/middleware"
	"burokrat-site/pages"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"
	"burokrat-site/pkg/view"
	"burokrat-site/utils"

	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"
)

const invalidCredentials = "Неверный логин или пароль"

// Submissions reads stored contact submissions.
type Submissions interface {
	List(ctx context.Context) ([]contact.Submission, error)
	Get(ctx context.Context, id int64) (*contact.Submission, error)
}

// Documents wraps a page body in the site layout.
type Documents interface {
	Document(p *pages.Page) (g.Node, error)
}

// LoginRequest is the admin login form body.
type LoginRequest struct {
	Username string `form:"username"`
	Password string `form:"password"`
}

type Handler struct {
	subs Submissions
	docs Documents
	cfg  config.Admin
}

func NewHandler(subs Submissions, docs Documents, cfg config.Admin) *Handler {
	return &Handler{subs: subs, docs: docs, cfg: cfg}
}

func (h *Handler) page(c echo.Context, status int, title string, body []g.Node) error {
	doc, err := h.docs.Document(&pages.Page{Title: title, Body: body})
	if err != nil {
		return err
	}
	return view.Page(c, status, doc)
}

// ListHandler handles GET /admin/submissions.
func (h *Handler) ListHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("admin_submissions")

	subs, err := h.subs.List(c.Request().Context())
	if err != nil {
		log.Error("Failed to load submissions", err)
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to load submissions", err)
	}

	log.Info("Serving admin submissions", logger.Count(len(subs)))
	return h.page(c, http.StatusOK, "Админ - Обращения", SubmissionsList(subs, h.cfg.AuthEnabled()))
}

// DetailHandler handles GET /admin/submissions/:id and answers with a fragment.
func (h *Handler) DetailHandler(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return view.Fragment(c, NotFoundFragment())
	}

	sub, err := h.subs.Get(c.Request().Context(), id)
	if apperrors.HasCode(err, apperrors.ErrCodeSubmissionNotFound) {
		return view.Fragment(c, NotFoundFragment())
	}
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeDatabaseError, "Failed to load submission", err)
	}
	return view.Fragment(c, SubmissionDetail(sub))
}

// LoginPageHandler handles GET /admin/login.
func (h *Handler) LoginPageHandler(c echo.Context) error {
	return h.page(c, http.StatusOK, "Вход - Бюрократ", LoginForm(h.cfg.Username, ""))
}

// LoginHandler checks the credentials and sets the session cookie.
func (h *Handler) LoginHandler(c echo.Context) error {
	log := logger.FromContext(c.Request().Context()).WithComponent("admin_auth")

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return apperrors.NewBadRequest(apperrors.ErrCodeInvalidInput, "Invalid login form")
	}

	if req.Username != h.cfg.Username || !utils.CheckPasswordHash(req.Password, h.cfg.PasswordHash) {
		log.Warn("Failed admin login", logger.String("username", req.Username), logger.RemoteIP(c.RealIP()))
		return h.page(c, http.StatusUnauthorized, "Вход - Бюрократ", LoginForm(req.Username, invalidCredentials))
	}

	token, err := utils.GenerateJWT(h.cfg.JWTSecret, req.Username, h.cfg.SessionTTL)
	if err != nil {
		return apperrors.NewInternal(apperrors.ErrCodeUnexpectedError, "Failed to create session", err)
	}

	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    token,
		Path:     "/admin",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
		HttpOnly: true,
		Secure:   c.IsTLS(),
		SameSite: http.SameSiteLaxMode,
	})
	log.Info("Admin logged in", logger.String("username", req.Username))
	return c.Redirect(http.StatusSeeOther, "/admin/submissions")
}

// LogoutHandler clears the session cookie.
func (h *Handler) LogoutHandler(c echo.Context) error {
	c.SetCookie(&http.Cookie{
		Name:     middleware.AdminCookie,
		Value:    "",
		Path:     "/admin",
		MaxAge:   -1,
		HttpOnly: true,
	})
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}
