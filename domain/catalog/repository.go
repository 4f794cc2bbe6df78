package catalog

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
)

const productColumns = `id, name, category_id, price, image, rating, reviews, badge,
	in_stock, description, featured, active, sort_order, created_at, updated_at`

const categoryColumns = `id, name, description, icon, color, url, sort_order, active`

// Repository reads and seeds the catalog tables.
type Repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// GetProducts returns products matching f ordered by (sort_order, id).
func (r *Repository) GetProducts(ctx context.Context, f ProductFilter) ([]Product, error) {
	var where []string
	var args []interface{}

	if f.CategoryID != "" {
		where = append(where, "category_id = ?")
		args = append(args, f.CategoryID)
	}
	if f.ActiveOnly {
		where = append(where, "active = ?")
		args = append(args, true)
	}
	if f.FeaturedOnly {
		where = append(where, "featured = ?")
		args = append(args, true)
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY sort_order, id"

	products := []Product{}
	if err := r.db.SelectContext(ctx, &products, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return products, nil
}

// GetCategories returns categories ordered by (sort_order, id).
func (r *Repository) GetCategories(ctx context.Context, activeOnly bool) ([]Category, error) {
	query := "SELECT " + categoryColumns + " FROM categories"
	var args []interface{}
	if activeOnly {
		query += " WHERE active = ?"
		args = append(args, true)
	}
	query += " ORDER BY sort_order, id"

	categories := []Category{}
	if err := r.db.SelectContext(ctx, &categories, r.db.Rebind(query), args...); err != nil {
		return nil, err
	}
	return categories, nil
}

// Counts returns the number of categories and products.
func (r *Repository) Counts(ctx context.Context) (categories, products int, err error) {
	if err = r.db.GetContext(ctx, &categories, "SELECT COUNT(*) FROM categories"); err != nil {
		return 0, 0, err
	}
	if err = r.db.GetContext(ctx, &products, "SELECT COUNT(*) FROM products"); err != nil {
		return 0, 0, err
	}
	return categories, products, nil
}

// Replace clears the catalog and inserts the given rows in one transaction.
// Products are deleted before categories to respect the foreign key.
func (r *Repository) Replace(ctx context.Context, categories []Category, products []Product) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM products"); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM categories"); err != nil {
		return err
	}

	insertCategory := tx.Rebind(`INSERT INTO categories (` + categoryColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, c := range categories {
		if _, err := tx.ExecContext(ctx, insertCategory,
			c.ID, c.Name, c.Description, c.Icon, c.Color, c.URL, c.SortOrder, c.Active,
		); err != nil {
			return err
		}
	}

	insertProduct := tx.Rebind(`INSERT INTO products (` + productColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	for _, p := range products {
		if _, err := tx.ExecContext(ctx, insertProduct,
			p.ID, p.Name, p.CategoryID, p.Price, p.Image, p.Rating, p.Reviews, p.Badge,
			p.InStock, p.Description, p.Featured, p.Active, p.SortOrder, p.CreatedAt, p.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}
