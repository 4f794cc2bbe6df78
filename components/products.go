package components

import (
	"fmt"
	"strconv"

	"burokrat-site/domain/catalog"
	"burokrat-site/domain/content"
	"burokrat-site/pkg/apperrors"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	starSVG   = `<svg xmlns="http://www.w3.org/2000/svg" width="16" height="16" viewBox="0 0 24 24" fill="currentColor" stroke="none"><polygon points="12 2 15.09 8.26 22 9.27 17 14.14 18.18 21.02 12 17.77 5.82 21.02 7 14.14 2 9.27 8.91 8.26 12 2"></polygon></svg>`
	searchSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="11" cy="11" r="8"></circle><path d="m21 21-4.35-4.35"></path></svg>`
)

const BadgeDefault = "badge-default"

var badgeClasses = map[string]string{
	"Bestseller": "badge-bestseller",
	"Бестселлер": "badge-bestseller",
	"New":        "badge-new",
	"Новинка":    "badge-new",
	"Premium":    "badge-premium",
	"Премиум":    "badge-premium",
	"Popular":    "badge-popular",
	"Популярный": "badge-popular",
}

// BadgeClass maps a badge label to its visual class. Unknown labels get
// BadgeDefault.
func BadgeClass(badge string) string {
	if c, ok := badgeClasses[badge]; ok {
		return c
	}
	return BadgeDefault
}

// FormatPrice renders a price the way cards show it.
func FormatPrice(p catalog.Product) string {
	return "$" + p.Price.StringFixed(2)
}

func productImage(p catalog.Product) g.Node {
	return h.Div(h.Class("product-image-container"),
		g.If(p.Badge != "", h.Span(h.Class("product-badge "+BadgeClass(p.Badge)), g.Text(p.Badge))),
		h.Img(h.Src(p.Image), h.Alt(p.Name), h.Class("product-image"), g.Attr("loading", "lazy")),
	)
}

func productFooter(p catalog.Product, addToCart string) g.Node {
	return h.Div(h.Class("product-footer"),
		h.Span(h.Class("product-price"), g.Text(FormatPrice(p))),
		h.Button(h.Class("btn-add-cart"), g.Text(addToCart)),
	)
}

// ProductCard is a products-page card. The data attributes drive the
// client-side filters.
func ProductCard(p catalog.Product, addToCart string) (g.Node, error) {
	if p.Name == "" {
		return nil, apperrors.NewContentShape("product card", "name")
	}
	return h.Div(h.Class("product-card"),
		g.Attr("data-product-id", strconv.FormatInt(p.ID, 10)),
		g.Attr("data-category", p.CategoryID),
		g.Attr("data-in-stock", strconv.FormatBool(p.InStock)),
		g.Attr("data-price", p.Price.StringFixed(2)),
		g.Attr("data-rating", p.Rating.String()),
		productImage(p),
		h.Div(h.Class("product-content"),
			h.Div(h.Class("product-rating"),
				g.Raw(starSVG),
				h.Span(h.Class("rating-value"), g.Text(p.Rating.String())),
				h.Span(h.Class("review-count"), g.Textf("(%d отзывов)", p.Reviews)),
			),
			h.H3(h.Class("product-name"), g.Text(p.Name)),
			productFooter(p, addToCart),
		),
	), nil
}

// FeaturedCard is the shorter card of the featured section.
func FeaturedCard(p catalog.Product, addToCart string) (g.Node, error) {
	if p.Name == "" {
		return nil, apperrors.NewContentShape("featured card", "name")
	}
	return h.Div(h.Class("product-card"),
		g.Attr("data-product-id", strconv.FormatInt(p.ID, 10)),
		productImage(p),
		h.Div(h.Class("product-content"),
			h.Div(h.Class("product-rating"),
				g.Raw(starSVG),
				h.Span(h.Class("rating-value"), g.Text(p.Rating.String())),
			),
			h.H3(h.Class("product-name"), g.Text(p.Name)),
			productFooter(p, addToCart),
		),
	), nil
}

func cards(products []catalog.Product, addToCart string, card func(catalog.Product, string) (g.Node, error)) (g.Group, error) {
	out := make(g.Group, 0, len(products))
	for _, p := range products {
		n, err := card(p, addToCart)
		if err != nil {
			return nil, fmt.Errorf("product %d: %w", p.ID, err)
		}
		out = append(out, n)
	}
	return out, nil
}

// SortOptions are the choices of the products-page sort dropdown.
func SortOptions(featuredLabel string) []Option {
	return []Option{
		{Value: "featured", Label: firstNonEmpty(featuredLabel, "Рекомендуемые")},
		{Value: "price-asc", Label: "Цена: по возрастанию"},
		{Value: "price-desc", Label: "Цена: по убыванию"},
		{Value: "rating", Label: "Рейтинг"},
	}
}

// ProductFilters is the sidebar of the products page. A category is pre-checked
// when the record marks it so, or when it is the catch-all category.
func ProductFilters(labels *content.Products, categories []catalog.Category) g.Node {
	checked := make(map[string]bool, len(labels.Categories))
	for _, c := range labels.Categories {
		checked[c.ID] = c.Checked
	}

	var categoryFilter g.Node
	if len(categories) > 0 {
		categoryFilter = h.Div(h.Class("filter-section"),
			h.H4(h.Class("filter-section-title"), g.Text(firstNonEmpty(labels.CategoriesTitle, "Категории"))),
			h.Div(h.Class("category-list"),
				g.Map(categories, func(c catalog.Category) g.Node {
					on, ok := checked[c.ID]
					if !ok {
						on = c.ID == catalog.AllCategoryID
					}
					return g.El("label", h.Class("category-label"),
						h.Input(h.Type("checkbox"), h.Name("category"), h.Value(c.ID), g.If(on, h.Checked()), h.Class("category-checkbox")),
						h.Span(g.Text(firstNonEmpty(c.Name, c.ID))),
					)
				}),
			),
		)
	}

	return h.Div(h.Class("filters-sidebar"),
		h.H3(h.Class("filters-title"), g.Text(firstNonEmpty(labels.FiltersTitle, "Фильтры"))),
		categoryFilter,
		h.Div(h.Class("filter-section"),
			h.H4(h.Class("filter-section-title"), g.Text(firstNonEmpty(labels.PriceRangeTitle, "Диапазон цен"))),
			h.Div(h.Class("price-range-controls"),
				h.Div(h.Class("price-slider-container"),
					h.Div(h.Class("slider-track")),
					h.Div(h.Class("slider-range"), h.ID("slider-range")),
					h.Input(h.Type("range"), g.Attr("min", "0"), g.Attr("max", "100"), h.Value("0"), h.Class("price-slider price-slider-min"), h.ID("price-min")),
					h.Input(h.Type("range"), g.Attr("min", "0"), g.Attr("max", "100"), h.Value("100"), h.Class("price-slider price-slider-max"), h.ID("price-max")),
				),
				h.Div(h.Class("price-values"),
					h.Span(h.Class("price-value"), h.ID("price-min-value"), g.Text("$0")),
					h.Span(h.Class("price-value"), h.ID("price-max-value"), g.Text("$100")),
				),
			),
		),
		h.Div(h.Class("filter-section"),
			g.El("label", h.Class("stock-label"),
				h.Input(h.Type("checkbox"), h.Name("in-stock"), h.Class("stock-checkbox")),
				h.Span(g.Text(firstNonEmpty(labels.InStockOnly, "Только в наличии"))),
			),
		),
		h.Button(h.Class("btn-clear-filters"), g.Text(firstNonEmpty(labels.ClearFilters, "Очистить все фильтры"))),
	)
}

// ProductsPage is the full catalog: header, filters, search, sort and grid.
func ProductsPage(labels *content.Products, categories []catalog.Category, products []catalog.Product) (g.Node, error) {
	addToCart := firstNonEmpty(labels.AddToCartText, "Добавить в корзину")
	grid, err := cards(products, addToCart, ProductCard)
	if err != nil {
		return nil, err
	}

	n := len(products)
	results := fmt.Sprintf("%s %d %s %d %s",
		firstNonEmpty(labels.ShowingText, "Показано"), n,
		firstNonEmpty(labels.OfText, "из"), n,
		firstNonEmpty(labels.ProductsText, "товаров"))

	main := h.Div(h.Class("products-main-content"),
		h.Div(h.Class("search-sort-bar"),
			h.Div(h.Class("search-box"),
				h.Span(h.Class("search-icon"), g.Raw(searchSVG)),
				h.Input(h.Type("text"), h.Placeholder(firstNonEmpty(labels.SearchPlaceholder, "Поиск товаров...")),
					h.Class("search-input"), h.ID("product-search")),
			),
			Dropdown(DropdownConfig{
				Options:  SortOptions(labels.SortLabel),
				Selected: "featured",
				ID:       "product-sort",
				Variant:  "default",
				Size:     "medium",
				Width:    "short",
				Class:    "sort-select",
			}),
		),
		h.Div(h.Class("results-info"), h.Span(h.Class("results-count"), g.Text(results))),
		h.Div(h.Class("products-grid"), h.ID("products-grid"), grid),
	)

	return h.Section(h.Class("products-page-section section"),
		h.Div(h.Class("products-page-container"),
			h.Div(h.Class("products-page-header"),
				h.H1(h.Class("products-page-title"), g.Text(firstNonEmpty(labels.PageTitle, "Наши товары"))),
				g.If(labels.PageSubtitle != "", h.P(h.Class("products-page-subtitle"), g.Text(labels.PageSubtitle))),
			),
			h.Div(h.Class("products-layout"),
				ProductFilters(labels, categories),
				main,
			),
		),
		h.Script(h.Src("/assets/scripts/product-filters.js")),
	), nil
}

// FeaturedProducts is the featured section with its link to the full
// catalog, or nothing when no product is featured.
func FeaturedProducts(f *content.Featured, products []catalog.Product) (g.Node, error) {
	if len(products) == 0 {
		return nil, nil
	}
	grid, err := cards(products, firstNonEmpty(f.AddToCartText, "Добавить в корзину"), FeaturedCard)
	if err != nil {
		return nil, err
	}

	return h.Section(h.Class("featured-products-section section"),
		h.Div(h.Class("featured-products-container"),
			h.Div(h.Class("featured-products-header"),
				h.H2(h.Class("featured-products-title"), g.Text(firstNonEmpty(f.Title, "Избранные товары"))),
				h.P(h.Class("featured-products-subtitle"),
					g.Text(firstNonEmpty(f.Subtitle, "Тщательно отобранные товары, любимые нашими покупателями"))),
			),
			h.Div(h.Class("products-grid"), grid),
			h.Div(h.Class("featured-products-cta"),
				h.A(h.Href(firstNonEmpty(f.CTAURL, productsPageURL)), h.Class("btn btn-outline view-all-btn"),
					g.Text(firstNonEmpty(f.CTAText, "Посмотреть все товары"))),
			),
		),
	), nil
}

var categoryColors = map[string]string{
	"bg-blue-500":   "#3b82f6",
	"bg-purple-500": "#a855f7",
	"bg-pink-500":   "#ec4899",
	"bg-indigo-500": "#6366f1",
	"bg-orange-500": "#f97316",
	"bg-teal-500":   "#14b8a6",
}

const (
	defaultCategoryColor = "#3b82f6"
	productsPageURL      = "/products-and-services"
)

// CategoryColor maps a colour class to the hex value the icon mask uses.
func CategoryColor(class string) string {
	if c, ok := categoryColors[class]; ok {
		return c
	}
	return defaultCategoryColor
}

func shopCategoryIcon(c content.ShopCategory) g.Node {
	if c.Icon == "" {
		return nil
	}
	return h.Div(h.Class("category-icon"),
		h.Span(h.Class("category-icon-inner"), g.Attr("role", "img"), g.Attr("aria-label", c.Name),
			g.Attr("style", "background-color: "+CategoryColor(c.Color)+"; "+
				"-webkit-mask: url('"+c.Icon+"') no-repeat center / contain; "+
				"mask: url('"+c.Icon+"') no-repeat center / contain;"),
		),
	)
}

// ShopCategories is the "shop by category" grid. Categories without a name
// are skipped; those without a url lead to the full catalog.
func ShopCategories(rec *content.ShopCategories) g.Node {
	var named []content.ShopCategory
	for _, c := range rec.Categories {
		if c.Name != "" {
			named = append(named, c)
		}
	}
	if len(named) == 0 {
		return nil
	}
	return h.Section(h.Class("shop-categories-section section"),
		h.Div(h.Class("shop-categories-container"),
			h.H2(h.Class("shop-categories-title"), g.Text(firstNonEmpty(rec.Title, "Категории товаров"))),
			g.If(rec.Subtitle != "", h.P(h.Class("shop-categories-subtitle"), g.Text(rec.Subtitle))),
			h.Div(h.Class("categories-grid"),
				g.Map(named, func(c content.ShopCategory) g.Node {
					return h.A(h.Href(firstNonEmpty(c.URL, productsPageURL)), h.Class("category-card"), g.Attr("draggable", "false"),
						shopCategoryIcon(c),
						h.Div(h.Class("category-content"),
							h.H3(h.Class("category-name"), g.Text(c.Name)),
							g.If(c.Description != "", h.P(h.Class("category-description"), g.Text(c.Description))),
						),
					)
				}),
			),
		),
	)
}
