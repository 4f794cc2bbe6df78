package components

import (
	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	defaultItemImage   = "/assets/images/icon.png"
	defaultOrderLabel  = "Заказать"
	defaultOrderAction = "/contact-form"
)

// CatalogIntro is the heading block shared by the catalog pages.
func CatalogIntro(heading, description string) g.Node {
	if heading == "" && description == "" {
		return nil
	}
	return h.Section(h.Class("page-intro"),
		g.If(heading != "", h.H1(g.Text(heading))),
		optP(description),
	)
}

func itemImage(it content.CatalogItem) g.Node {
	return h.Div(h.Class("service-card-image"),
		h.Img(h.Src(firstNonEmpty(it.Image, defaultItemImage)), h.Alt(it.Title)),
	)
}

// OrderCard is a product card whose button loads the contact form into the
// page modal.
func OrderCard(it content.CatalogItem) g.Node {
	if it.Title == "" {
		return nil
	}
	return h.Div(h.Class("product-card"),
		itemImage(it),
		h.Div(h.Class("service-card-content"),
			h.H3(g.Text(it.Title)),
			optP(it.Description),
			h.Button(h.Class("btn btn-primary"), h.Type("button"),
				g.Attr("hx-get", firstNonEmpty(it.ButtonAction, defaultOrderAction)),
				g.Attr("hx-target", "#modal"),
				g.Attr("hx-swap", "innerHTML"),
				g.Text(firstNonEmpty(it.ButtonText, defaultOrderLabel)),
			),
		),
	)
}

func categoryCard(it content.CatalogItem) g.Node {
	if it.Title == "" {
		return nil
	}
	return h.Div(h.Class("category-card"),
		itemImage(it),
		h.Div(h.Class("service-card-content"),
			h.H3(g.Text(it.Title)),
			optP(it.Description),
		),
	)
}

// itemSection is a titled grid of cards, or nothing when no item renders.
func itemSection(class, title, gridClass string, items []content.CatalogItem, card func(content.CatalogItem) g.Node, lead g.Node) g.Node {
	var cards []g.Node
	for _, it := range items {
		if n := card(it); n != nil {
			cards = append(cards, n)
		}
	}
	if len(cards) == 0 {
		return nil
	}
	return h.Section(h.Class(class),
		h.H2(g.Text(title)),
		h.Div(h.Class(gridClass), lead, g.Group(cards)),
	)
}

// SealsStamps renders the seals and stamps page body.
func SealsStamps(rec *content.CatalogPage) []g.Node {
	p := rec.Page
	return []g.Node{
		CatalogIntro(
			firstNonEmpty(p.Intro.Heading, "Печати и штампы"),
			firstNonEmpty(p.Intro.Description, "Изготовление печатей и штампов любой сложности"),
		),
		itemSection("products-section", firstNonEmpty(p.Products.SectionTitle, "Наши продукты"),
			"product-grid", p.Products.Items, OrderCard, nil),
		h.Div(h.ID("modal")),
	}
}

// SelfInkingStamps renders the self-inking stamps page body.
func SelfInkingStamps(rec *content.CatalogPage) []g.Node {
	p := rec.Page
	return []g.Node{
		CatalogIntro(
			firstNonEmpty(p.Intro.Heading, "Оснастки для печатей и штампов"),
			firstNonEmpty(p.Intro.Description, "Широкий выбор оснасток для печатей и штампов"),
		),
		itemSection("products-section", firstNonEmpty(p.Products.SectionTitle, "Каталог оснасток"),
			"product-grid", p.Products.Items, OrderCard,
			h.P(g.Text(firstNonEmpty(p.Products.Description, "Автоматические оснастки различных размеров")))),
		h.Div(h.ID("modal")),
	}
}

// Stationery renders the stationery page body.
func Stationery(rec *content.CatalogPage) []g.Node {
	p := rec.Page
	return []g.Node{
		CatalogIntro(
			firstNonEmpty(p.Intro.Heading, "Канцелярские товары"),
			firstNonEmpty(p.Intro.Description, "Широкий ассортимент канцелярских товаров для офиса и дома"),
		),
		itemSection("categories-section", firstNonEmpty(p.Categories.SectionTitle, "Категории товаров"),
			"category-grid", p.Categories.Items, categoryCard, nil),
	}
}

var engravingServices = []string{
	"Гравировка на металле",
	"Гравировка на пластике",
	"Гравировка на дереве",
	"Лазерная гравировка",
}

// Engraving has no content record; the list is fixed.
func Engraving() []g.Node {
	return []g.Node{
		CatalogIntro("Профессиональные услуги гравировки", "Гравировка на различных материалах"),
		h.Section(h.Class("services-list"),
			h.H2(g.Text("Виды гравировки")),
			h.Ul(g.Map(engravingServices, func(s string) g.Node { return h.Li(g.Text(s)) })),
		),
	}
}
