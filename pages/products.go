package pages

import (
	"context"
	"fmt"

	"burokrat-site/components"
	"burokrat-site/domain/catalog"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// Products composes the products-and-services page. Products whose category
// is not among the active categories are left out.
func (c *Composer) Products(ctx context.Context) (*Page, error) {
	labels, err := c.content.Products()
	if err != nil {
		return nil, err
	}
	categories, err := c.catalog.GetCategories(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}
	products, err := c.catalog.GetProducts(ctx, catalog.ProductFilter{ActiveOnly: true})
	if err != nil {
		return nil, fmt.Errorf("load products: %w", err)
	}

	body, err := components.ProductsPage(labels, categories, catalog.InCategories(products, categories))
	if err != nil {
		return nil, err
	}
	page := &Page{Title: labels.Title, Body: []g.Node{body}}
	if labels.PageSubtitle != "" {
		page.Meta = map[string]string{components.MetaDescription: labels.PageSubtitle}
	}
	return page, nil
}

// Featured composes the featured-products page with the shop categories grid
// below it.
func (c *Composer) Featured(ctx context.Context) (*Page, error) {
	rec, err := c.content.Featured()
	if err != nil {
		return nil, err
	}
	shop, err := c.content.ShopCategories()
	if err != nil {
		return nil, err
	}
	products, err := c.catalog.GetProducts(ctx, catalog.ProductFilter{ActiveOnly: true, FeaturedOnly: true})
	if err != nil {
		return nil, fmt.Errorf("load featured products: %w", err)
	}

	featured, err := components.FeaturedProducts(rec, products)
	if err != nil {
		return nil, err
	}
	return &Page{
		Title: "Избранные товары | Бюрократ",
		Body: []g.Node{
			h.Section(h.Class("section"),
				h.Div(h.Class("page-intro"),
					h.H1(h.Class("page-title"), g.Text("Избранные товары")),
					h.P(h.Class("page-subtitle"), g.Text("Тщательно отобранные товары, любимые нашими покупателями")),
				),
			),
			featured,
			components.ShopCategories(shop),
		},
	}, nil
}
