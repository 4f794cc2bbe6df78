package components

import (
	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Header is the logo, the burger toggle and the main navigation. Menu entries
// without a url are skipped.
func Header(site *content.Main) g.Group {
	name := firstNonEmpty(site.CompanyInfo.Name, defaultTitle)
	var links []g.Node
	for _, item := range site.Navigation.MainMenu {
		if item.URL != "" && item.Label != "" {
			links = append(links, h.Li(h.A(h.Href(item.URL), g.Text(item.Label))))
		}
	}
	var menu g.Node
	if len(links) > 0 {
		menu = h.Ul(h.Class("nav-menu"), g.Group(links))
	}
	return g.Group{
		h.Div(h.Class("header-content"),
			h.H1(
				h.A(h.Href("/"), h.Class("logo-link"),
					h.Img(h.Src("/assets/images/logo.png"), h.Alt(name), h.Class("logo-image"), g.Attr("title", name)),
				),
			),
			h.Button(h.Class("burger-btn"), h.ID("burgerBtn"), g.Attr("aria-label", "Menu"),
				h.Img(h.Src("/assets/images/pen-burger.svg"), h.Alt(""), h.Class("burger-bar-top")),
				h.Img(h.Src("/assets/images/pencil-burger.svg"), h.Alt(""), h.Class("burger-bar-bottom")),
			),
			h.Nav(h.Class("nav-container"), h.ID("navContainer"),
				menu,
			),
		),
		h.Script(h.Src("/assets/scripts/header-nav.js")),
	}
}
