package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// AllCategoryID is the catch-all category every import creates first.
const AllCategoryID = "all"

// Category groups products on the products page.
type Category struct {
	ID          string `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Icon        string `db:"icon" json:"icon"`
	Color       string `db:"color" json:"color"`
	URL         string `db:"url" json:"url"`
	SortOrder   int    `db:"sort_order" json:"sort_order"`
	Active      bool   `db:"active" json:"active"`
}

// Product is a catalog row. Price is always positive and Rating stays in [0, 5].
type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	CategoryID  string          `db:"category_id" json:"category_id"`
	Price       decimal.Decimal `db:"price" json:"price"`
	Image       string          `db:"image" json:"image"`
	Rating      decimal.Decimal `db:"rating" json:"rating"`
	Reviews     int             `db:"reviews" json:"reviews"`
	Badge       string          `db:"badge" json:"badge"`
	InStock     bool            `db:"in_stock" json:"in_stock"`
	Description string          `db:"description" json:"description"`
	Featured    bool            `db:"featured" json:"featured"`
	Active      bool            `db:"active" json:"active"`
	SortOrder   int             `db:"sort_order" json:"sort_order"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// ProductFilter narrows GetProducts. Zero value returns everything.
type ProductFilter struct {
	CategoryID   string
	ActiveOnly   bool
	FeaturedOnly bool
}

var maxRating = decimal.NewFromInt(5)

// Valid reports whether the numeric fields are within their allowed ranges.
func (p Product) Valid() bool {
	return p.Price.IsPositive() &&
		!p.Rating.IsNegative() && p.Rating.LessThanOrEqual(maxRating) &&
		p.Reviews >= 0
}

// InCategories drops products whose category is not in the given set.
func InCategories(products []Product, categories []Category) []Product {
	known := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		known[c.ID] = struct{}{}
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if _, ok := known[p.CategoryID]; ok {
			out = append(out, p)
		}
	}
	return out
}
