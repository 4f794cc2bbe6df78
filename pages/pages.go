// Package pages assembles full page bodies from content records and
// component builders. A composer either returns the whole page or an error.
package pages

import (
	"context"

	"burokrat-site/components"
	"burokrat-site/domain/catalog"
	"burokrat-site/domain/contact"
	"burokrat-site/domain/content"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Content is the set of record accessors the composers read.
type Content interface {
	Main() (*content.Main, error)
	About() (*content.About, error)
	Contact() (*content.Contact, error)
	Privacy() (*content.Privacy, error)
	Agreement() (*content.Agreement, error)
	Clients() (*content.Clients, error)
	Products() (*content.Products, error)
	Featured() (*content.Featured, error)
	ShopCategories() (*content.ShopCategories, error)
	SealsStamps() (*content.CatalogPage, error)
	SelfInkingStamps() (*content.CatalogPage, error)
	Stationery() (*content.CatalogPage, error)
}

// Catalog reads products and categories.
type Catalog interface {
	GetProducts(ctx context.Context, f catalog.ProductFilter) ([]catalog.Product, error)
	GetCategories(ctx context.Context, activeOnly bool) ([]catalog.Category, error)
}

// Page is a composed body plus what the layout needs to wrap it.
type Page struct {
	Title   string
	Body    []g.Node
	Meta    map[string]string
	Sidebar []g.Node
}

type Composer struct {
	content Content
	catalog Catalog
}

func New(c Content, cat Catalog) *Composer {
	return &Composer{content: c, catalog: cat}
}

// Document wraps p in the site layout.
func (c *Composer) Document(p *Page) (g.Node, error) {
	site, err := c.content.Main()
	if err != nil {
		return nil, err
	}
	var opts []components.LayoutOption
	if len(p.Meta) > 0 {
		opts = append(opts, components.WithMeta(p.Meta))
	}
	if len(p.Sidebar) > 0 {
		opts = append(opts, components.WithSidebar(p.Sidebar...))
	}
	return components.Wrap(site, p.Title, p.Body, opts...), nil
}

func (c *Composer) Home(ctx context.Context) (*Page, error) {
	site, err := c.content.Main()
	if err != nil {
		return nil, err
	}
	rec, err := c.content.Contact()
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: site.Title,
		Body: []g.Node{
			components.Hero(site.Hero),
			components.Services(site.Navigation.MainMenu),
			components.FAQ(site.FAQ),
			components.ContactForm(rec, contact.RulesFor(rec).Messages),
		},
	}, nil
}

func (c *Composer) About(ctx context.Context) (*Page, error) {
	rec, err := c.content.About()
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: rec.Title,
		Body: []g.Node{
			components.PageHero(rec.Hero.Heading, rec.Hero.Subtitle),
			components.Story(rec.Story, rec.Stats),
			components.Expertise(rec.Expertise),
			components.Values(rec.Values),
			components.Locations(rec.Locations),
			components.CTA(rec.CTA),
		},
	}, nil
}

func (c *Composer) Contact(ctx context.Context) (*Page, error) {
	site, err := c.content.Main()
	if err != nil {
		return nil, err
	}
	rec, err := c.content.Contact()
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: firstNonEmpty(rec.PageTitle, "Контакты - Бюрократ"),
		Body: []g.Node{
			components.PageHero(rec.Title, rec.Intro),
			components.ContactForm(rec, contact.RulesFor(rec).Messages),
			h.Section(h.Class("contact-info-section"),
				h.H2(g.Text("Контактная информация")),
				components.ContactInfo(site),
			),
		},
	}, nil
}

// ContactModal is the fragment the catalog "order" buttons load.
func (c *Composer) ContactModal(ctx context.Context) (g.Node, error) {
	rec, err := c.content.Contact()
	if err != nil {
		return nil, err
	}
	return components.ContactModal(rec, contact.RulesFor(rec).Messages), nil
}

func (c *Composer) Privacy(ctx context.Context) (*Page, error) {
	rec, err := c.content.Privacy()
	if err != nil {
		return nil, err
	}
	return &Page{Title: rec.Title, Body: components.Privacy(rec)}, nil
}

func (c *Composer) Agreement(ctx context.Context) (*Page, error) {
	rec, err := c.content.Agreement()
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: firstNonEmpty(rec.Title, "Пользовательское соглашение"),
		Body:  components.Agreement(rec),
	}, nil
}

func (c *Composer) Clients(ctx context.Context) (*Page, error) {
	site, err := c.content.Main()
	if err != nil {
		return nil, err
	}
	rec, err := c.content.Clients()
	if err != nil {
		return nil, err
	}
	return &Page{Title: rec.Title, Body: components.Clients(rec, site.CompanyInfo)}, nil
}

func (c *Composer) SealsStamps(ctx context.Context) (*Page, error) {
	rec, err := c.content.SealsStamps()
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: firstNonEmpty(rec.Title, "Печати и штампы | Бюрократ"),
		Body:  components.SealsStamps(rec),
	}, nil
}

func (c *Composer) SelfInkingStamps(ctx context.Context) (*Page, error) {
	rec, err := c.content.SelfInkingStamps()
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: firstNonEmpty(rec.Title, "Оснастки | Бюрократ"),
		Body:  components.SelfInkingStamps(rec),
	}, nil
}

func (c *Composer) Stationery(ctx context.Context) (*Page, error) {
	rec, err := c.content.Stationery()
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: firstNonEmpty(rec.Title, "Канцелярские товары | Бюрократ"),
		Body:  components.Stationery(rec),
	}, nil
}

func (c *Composer) Engraving(ctx context.Context) (*Page, error) {
	return &Page{Title: "Гравировка | Бюрократ", Body: components.Engraving()}, nil
}

func (c *Composer) NotFound(ctx context.Context) (*Page, error) {
	return &Page{
		Title: "404 - Страница не найдена",
		Body:  []g.Node{h.Div(h.Class("error-404-page"), components.NotFound())},
	}, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// Error is the page shown for failures other than 404.
func (c *Composer) Error(ctx context.Context, status int) (*Page, error) {
	return &Page{
		Title: "Ошибка - Бюрократ",
		Body: []g.Node{h.Section(h.Class("page-intro error-page"),
			h.H1(g.Text("Что-то пошло не так")),
			h.P(g.Textf("Не удалось открыть страницу (код %d). Пожалуйста, попробуйте позже.", status)),
			h.A(h.Href("/"), h.Class("btn btn-primary"), g.Text("На главную")),
		)},
	}, nil
}
