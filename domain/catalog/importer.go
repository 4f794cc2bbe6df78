package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"burokrat-site/domain/content"
	"burokrat-site/pkg/logger"
)

// ErrCatalogNotEmpty is returned by Import when rows exist and force is off.
var ErrCatalogNotEmpty = errors.New("catalog already contains data")

// categorySlugs maps shop category names to stable ids.
var categorySlugs = map[string]string{
	"Письменные принадлежности":     "writing-instruments",
	"Блокноты и журналы":            "notebooks-journals",
	"Художественные принадлежности": "art-supplies",
	"Офисные принадлежности":        "office-essentials",
	"Товары для рукоделия":          "craft-supplies",
	"Настольные аксессуары":         "desk-accessories",
}

// Source supplies the content records the import reads.
type Source interface {
	Products() (*content.Products, error)
	Featured() (*content.Featured, error)
	ShopCategories() (*content.ShopCategories, error)
}

// Store is the subset of Repository the importer writes through.
type Store interface {
	Counts(ctx context.Context) (categories, products int, err error)
	Replace(ctx context.Context, categories []Category, products []Product) error
}

// Summary describes what an import wrote.
type Summary struct {
	Categories  []Category
	Products    int
	Featured    int
	PerCategory map[string]int
	Skipped     []string
}

type Importer struct {
	src   Source
	store Store
	log   logger.Logger
	now   func() time.Time
}

func NewImporter(src Source, store Store, log logger.Logger) *Importer {
	return &Importer{src: src, store: store, log: log.WithComponent("catalog-import"), now: time.Now}
}

// Import seeds categories and products from content files. Existing rows are
// replaced only when force is set.
func (im *Importer) Import(ctx context.Context, force bool) (*Summary, error) {
	cats, prods, err := im.store.Counts(ctx)
	if err != nil {
		return nil, fmt.Errorf("count existing catalog: %w", err)
	}
	if (cats > 0 || prods > 0) && !force {
		return nil, fmt.Errorf("%w: %d categories, %d products", ErrCatalogNotEmpty, cats, prods)
	}

	categories, err := im.buildCategories()
	if err != nil {
		return nil, err
	}
	products, skipped, err := im.buildProducts(categories)
	if err != nil {
		return nil, err
	}

	if err := im.store.Replace(ctx, categories, products); err != nil {
		return nil, fmt.Errorf("write catalog: %w", err)
	}

	sum := &Summary{Categories: categories, Products: len(products), PerCategory: map[string]int{}, Skipped: skipped}
	for _, p := range products {
		if p.Featured {
			sum.Featured++
		}
		sum.PerCategory[p.CategoryID]++
	}

	im.log.Info("Catalog imported",
		logger.Int("categories", len(categories)),
		logger.Int("products", sum.Products),
		logger.Int("featured", sum.Featured),
		logger.Int("skipped", len(skipped)),
	)
	return sum, nil
}

func (im *Importer) buildCategories() ([]Category, error) {
	shop, err := im.src.ShopCategories()
	if err != nil {
		return nil, err
	}
	page, err := im.src.Products()
	if err != nil {
		return nil, err
	}

	categories := []Category{{
		ID:          AllCategoryID,
		Name:        "Все товары",
		Description: "Все доступные товары",
		Color:       "bg-gray-500",
		URL:         "/products",
		Active:      true,
	}}
	seen := map[string]bool{AllCategoryID: true}

	for i, sc := range shop.Categories {
		id, ok := categorySlugs[sc.Name]
		if !ok {
			id = strings.ReplaceAll(strings.ToLower(sc.Name), " ", "-")
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		c := Category{
			ID:          id,
			Name:        sc.Name,
			Description: sc.Description,
			Icon:        sc.Icon,
			Color:       sc.Color,
			URL:         sc.URL,
			SortOrder:   i + 1,
			Active:      true,
		}
		if c.Color == "" {
			c.Color = "bg-blue-500"
		}
		if c.URL == "" {
			c.URL = "/products/" + id
		}
		categories = append(categories, c)
	}

	// Filter categories on the products page that have no shop card.
	for _, pc := range page.Categories {
		if seen[pc.ID] {
			continue
		}
		seen[pc.ID] = true
		name := pc.Name
		if name == "" {
			name = pc.ID
		}
		categories = append(categories, Category{
			ID:        pc.ID,
			Name:      name,
			Color:     "bg-blue-500",
			URL:       "/products/" + pc.ID,
			SortOrder: 100,
			Active:    true,
		})
	}
	return categories, nil
}

func (im *Importer) buildProducts(categories []Category) ([]Product, []string, error) {
	page, err := im.src.Products()
	if err != nil {
		return nil, nil, err
	}
	featured, err := im.src.Featured()
	if err != nil {
		return nil, nil, err
	}

	featuredIDs := make(map[int64]bool, len(featured.Products))
	for _, p := range featured.Products {
		featuredIDs[p.ID] = true
	}
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c.ID] = true
	}

	now := im.now().UTC()
	var products []Product
	var skipped []string
	for _, seed := range page.Products {
		p := Product{
			ID:          seed.ID,
			Name:        seed.Name,
			CategoryID:  seed.Category,
			Price:       seed.Price,
			Image:       seed.Image,
			Rating:      seed.Rating,
			Reviews:     seed.Reviews,
			Badge:       seed.Badge,
			InStock:     seed.InStock == nil || *seed.InStock,
			Description: seed.Description,
			Featured:    featuredIDs[seed.ID],
			Active:      true,
			SortOrder:   int(seed.ID),
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if p.CategoryID == "" {
			p.CategoryID = AllCategoryID
		}
		if !known[p.CategoryID] || !p.Valid() {
			im.log.Warn("Skipping product", logger.Int64("product_id", p.ID), logger.String("name", p.Name))
			skipped = append(skipped, p.Name)
			continue
		}
		products = append(products, p)
	}
	return products, skipped, nil
}
