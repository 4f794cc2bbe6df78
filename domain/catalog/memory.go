package catalog

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-process catalog used when no database is configured. The
// server fills it by running the importer against the content files.
type Memory struct {
	mu         sync.RWMutex
	categories []Category
	products   []Product
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) GetProducts(_ context.Context, f ProductFilter) ([]Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Product{}
	for _, p := range m.products {
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.ActiveOnly && !p.Active {
			continue
		}
		if f.FeaturedOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (m *Memory) GetCategories(_ context.Context, activeOnly bool) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Category{}
	for _, c := range m.categories {
		if activeOnly && !c.Active {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (m *Memory) Counts(_ context.Context) (int, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.categories), len(m.products), nil
}

// Replace swaps the whole catalog, keeping the (sort_order, id) order the
// database queries return.
func (m *Memory) Replace(_ context.Context, categories []Category, products []Product) error {
	cats := append([]Category(nil), categories...)
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return cats[i].ID < cats[j].ID
	})
	prods := append([]Product(nil), products...)
	sort.SliceStable(prods, func(i, j int) bool {
		if prods[i].SortOrder != prods[j].SortOrder {
			return prods[i].SortOrder < prods[j].SortOrder
		}
		return prods[i].ID < prods[j].ID
	})

	m.mu.Lock()
	m.categories, m.products = cats, prods
	m.mu.Unlock()
	return nil
}
