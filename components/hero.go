package components

import (
	"strings"

	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

var defaultHeroStats = []content.HeroStat{
	{Number: "20+", Label: "лет опыта"},
	{Number: "5000+", Label: "клиентов"},
	{Number: "24ч", Label: "срочное изготовление"},
}

// Hero is the home page banner.
func Hero(hero content.Hero) g.Node {
	stats := hero.Stats
	if len(stats) == 0 {
		stats = defaultHeroStats
	}

	return h.Section(h.Class("section hero-section"),
		h.Div(h.Class("container"),
			h.Div(h.Class("hero-grid"),
				h.Div(h.Class("content-column"),
					h.Span(h.Class("badge"), g.Text(firstNonEmpty(hero.Badge, "✨ Качество и надёжность"))),
					h.H1(
						g.Text(firstNonEmpty(hero.Title, "Печати и штампы")), g.Text(" "),
						h.Span(h.Class("highlight"), g.Text(firstNonEmpty(hero.Highlight, "для вашего бизнеса"))),
					),
					h.P(h.Class("subtitle"), g.Text(firstNonEmpty(hero.Subtitle, "Профессиональное изготовление печатей и штампов"))),
					h.Div(h.Class("button-group"),
						h.A(h.Href("#services-section"), h.Class("btn btn-primary"), g.Text("Наши услуги")),
						h.A(h.Href("#contact-form"), h.Class("btn btn-outline"), g.Text("Связаться с нами")),
					),
					h.Div(h.Class("stats-group"),
						g.Map(stats, func(s content.HeroStat) g.Node {
							return h.Div(
								h.Div(h.Class("stat-number"), g.Text(s.Number)),
								h.Div(h.Class("stat-label"), g.Text(s.Label)),
							)
						}),
					),
				),
				h.Div(h.Class("image-column"),
					h.Div(h.Class("image-glow")),
					h.Img(h.Src(firstNonEmpty(hero.Image, "/assets/images/engraving.svg")), h.Alt("Печати и штампы"), h.Class("hero-image")),
				),
			),
		),
	)
}

// PageHero is the plain heading block used at the top of inner pages.
func PageHero(title, subtitle string) g.Node {
	if title == "" && subtitle == "" {
		return nil
	}
	return h.Section(h.Class("page-hero"),
		g.If(title != "", h.H1(g.Text(title))),
		g.If(subtitle != "", h.P(h.Class("page-hero-subtitle"), g.Text(subtitle))),
	)
}

// ServiceCard links to one service page. SVG images are drawn as a CSS mask
// so they take the theme colour.
func ServiceCard(item content.MenuItem) g.Node {
	if item.URL == "" || item.Label == "" {
		return nil
	}
	src := firstNonEmpty(item.Image, "/assets/images/icon.png")

	var image g.Node
	if strings.HasSuffix(strings.ToLower(src), ".svg") {
		image = h.Span(h.Class("service-icon"), g.Attr("role", "img"), g.Attr("aria-label", item.Label),
			g.Attr("style", "background-color: var(--primary-color); "+
				"-webkit-mask: url('"+src+"') no-repeat center / contain; "+
				"mask: url('"+src+"') no-repeat center / contain; "+
				"width: 120px; height: 120px; display: inline-block;"),
		)
	} else {
		image = h.Img(h.Src(src), h.Alt(item.Label))
	}

	return h.A(h.Href(item.URL), h.Class("service-card"), g.Attr("draggable", "false"),
		h.Div(h.Class("service-card-image"), image),
		h.Div(h.Class("service-card-content"),
			h.H3(g.Text(item.Label)),
			g.If(item.Description != "", h.P(g.Text(item.Description))),
		),
	)
}

// Services lists every main-menu entry except the about page.
func Services(menu []content.MenuItem) g.Node {
	cards := make([]g.Node, 0, len(menu))
	for _, item := range menu {
		if item.URL == "/about" {
			continue
		}
		if card := ServiceCard(item); card != nil {
			cards = append(cards, card)
		}
	}
	if len(cards) == 0 {
		return nil
	}

	return h.Section(h.Class("section services-section"), h.ID("services-section"),
		h.Div(h.Class("container"),
			h.H2(g.Text("Наши услуги")),
			h.Div(h.Class("service-grid"), g.Group(cards)),
		),
	)
}
