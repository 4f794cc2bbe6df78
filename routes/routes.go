package routes

import (
	"net/http"

	"burokrat-site/domain/admin"
	"burokrat-site/domain/contact"
	"burokrat-site/domain/content"
	"burokrat-site/domain/health"
	"burokrat-site/domain/site"
	"burokrat-site/pages"

	"github.com/labstack/echo/v4"
)

// Deps are the handlers and middleware the routes are built from. Admin is
// nil when no database or no admin password is configured; without both
// Admin and AdminAuth the admin routes are not mounted.
type Deps struct {
	Site        *site.Handler
	Pages       *pages.Composer
	Contact     *contact.Handler
	Admin       *admin.Handler
	Health      *health.Handler
	AssetsDir   string
	RateLimiter echo.MiddlewareFunc
	AdminAuth   echo.MiddlewareFunc
}

func RegisterRoutes(e *echo.Echo, d Deps) {
	p := d.Pages
	s := d.Site

	// Pages
	e.GET("/", s.Page(content.RecordMain, p.Home))
	e.GET("/about", s.Page(content.RecordAbout, p.About))
	e.GET("/contact", s.Page(content.RecordContact, p.Contact))
	e.GET("/clients", s.Page(content.RecordClients, p.Clients))
	e.GET("/agreement", s.Page(content.RecordAgreement, p.Agreement))
	e.GET("/products-and-services", s.Page(content.RecordProducts, p.Products))
	e.GET("/featured-products", s.Page(content.RecordFeatured, p.Featured))
	e.GET("/seals-and-stamps", s.Page(content.RecordSealsStamps, p.SealsStamps))
	e.GET("/self-inking-stamps", s.Page(content.RecordSelfInkingStamps, p.SelfInkingStamps))
	e.GET("/stationery", s.Page(content.RecordStationery, p.Stationery))
	e.GET("/engraving", s.Page("engraving", p.Engraving))
	e.GET("/404", s.Page("404", p.NotFound))

	privacy := s.Page(content.RecordPrivacy, p.Privacy)
	e.GET("/privacy", privacy)
	e.GET("/privacy-statement", privacy)
	e.GET("/privacy-statemnt", privacy)

	// Contact form
	e.GET("/contact-form", s.ContactFormHandler)
	e.POST("/contact/submit", d.Contact.SubmitHandler, d.RateLimiter)

	// Admin
	if d.Admin != nil && d.AdminAuth != nil {
		e.GET("/admin/login", d.Admin.LoginPageHandler)
		e.POST("/admin/login", d.Admin.LoginHandler)
		e.POST("/admin/logout", d.Admin.LogoutHandler)

		adminGroup := e.Group("/admin/submissions", d.AdminAuth)
		adminGroup.GET("", d.Admin.ListHandler)
		adminGroup.GET("/:id", d.Admin.DetailHandler)
	}

	// Health
	e.GET("/api/health", health.APIHandler)
	e.GET("/health/live", d.Health.LivenessHandler)
	e.GET("/health/ready", d.Health.ReadinessHandler)
	e.GET("/health/stats", d.Health.StatsHandler)

	// Static files
	e.Static("/assets", d.AssetsDir)
	e.GET("/favicon.ico", func(c echo.Context) error {
		return c.Redirect(http.StatusMovedPermanently, "/assets/images/icon.png")
	})

	e.RouteNotFound("/*", s.NotFoundHandler)
}
