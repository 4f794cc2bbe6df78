package catalog

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T, driver string) (*Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })
	return NewRepository(sqlx.NewDb(mockDB, driver)), mock
}

var productRowColumns = []string{
	"id", "name", "category_id", "price", "image", "rating", "reviews", "badge",
	"in_stock", "description", "featured", "active", "sort_order", "created_at", "updated_at",
}

func TestGetProducts_FilterByCategoryAndActive(t *testing.T) {
	repo, mock := newMockRepo(t, "postgres")
	now := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(productRowColumns).
		AddRow(1, "Ручка гелевая", "writing-instruments", "2.50", "/img/pen.png", "4.5", 12, "Новинка", true, "", false, true, 1, now, now).
		AddRow(3, "Карандаш", "writing-instruments", "0.90", "/img/pencil.png", "4.1", 3, "", true, "", true, true, 3, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE category_id = $1 AND active = $2 ORDER BY sort_order, id")).
		WithArgs("writing-instruments", true).
		WillReturnRows(rows)

	products, err := repo.GetProducts(context.Background(), ProductFilter{CategoryID: "writing-instruments", ActiveOnly: true})
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "2.5", products[0].Price.String())
	assert.Equal(t, "Новинка", products[0].Badge)
	assert.True(t, products[1].Featured)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProducts_NoFilter(t *testing.T) {
	repo, mock := newMockRepo(t, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("FROM products ORDER BY sort_order, id")).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	products, err := repo.GetProducts(context.Background(), ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.NotNil(t, products)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetProducts_FeaturedMySQLPlaceholders(t *testing.T) {
	repo, mock := newMockRepo(t, "mysql")

	mock.ExpectQuery(regexp.QuoteMeta("FROM products WHERE active = ? AND featured = ? ORDER BY sort_order, id")).
		WithArgs(true, true).
		WillReturnRows(sqlmock.NewRows(productRowColumns))

	_, err := repo.GetProducts(context.Background(), ProductFilter{ActiveOnly: true, FeaturedOnly: true})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCategories_ActiveOnly(t *testing.T) {
	repo, mock := newMockRepo(t, "postgres")

	mock.ExpectQuery(regexp.QuoteMeta("FROM categories WHERE active = $1 ORDER BY sort_order, id")).
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "icon", "color", "url", "sort_order", "active"}).
			AddRow("all", "Все товары", "", "", "bg-gray-500", "/products", 0, true))

	cats, err := repo.GetCategories(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, AllCategoryID, cats[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplace_DeletesProductsBeforeCategories(t *testing.T) {
	repo, mock := newMockRepo(t, "postgres")

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM products")).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM categories")).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO categories")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO products")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Replace(context.Background(),
		[]Category{{ID: "all", Name: "Все товары", Active: true}},
		[]Product{{ID: 1, Name: "Ручка", CategoryID: "all"}},
	)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInCategories(t *testing.T) {
	products := []Product{
		{ID: 1, CategoryID: "writing-instruments"},
		{ID: 2, CategoryID: "gone"},
		{ID: 3, CategoryID: "all"},
	}
	got := InCategories(products, []Category{{ID: "all"}, {ID: "writing-instruments"}})

	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, int64(3), got[1].ID)
}
