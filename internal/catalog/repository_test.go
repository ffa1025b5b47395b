package catalog_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/cafezinho/coffee-service/internal/catalog"
	"github.com/cafezinho/coffee-service/internal/config"
	"github.com/cafezinho/coffee-service/internal/db"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.DB.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.DB.MigrationsPath = "../../migrations"

	dbConn, err := db.New(cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		dbConn.Close()
	})

	return dbConn
}

func TestProductRepository_CreateAndGetByID(t *testing.T) {
	dbConn := newTestDB(t)
	repo := catalog.NewRepository(dbConn)
	ctx := context.Background()

	product := &catalog.Product{Name: "Espresso", Value: 3.5}
	err := repo.Create(ctx, product)
	require.NoError(t, err)
	require.Equal(t, int64(1), product.ID)

	got, err := repo.GetByID(ctx, product.ID)
	require.NoError(t, err)
	require.Equal(t, product, got)
}

func TestProductRepository_GetByID_NotFound(t *testing.T) {
	dbConn := newTestDB(t)
	repo := catalog.NewRepository(dbConn)

	got, err := repo.GetByID(context.Background(), 42)
	require.True(t, errors.Is(err, catalog.ErrNotFound))
	require.Nil(t, got)
}

func TestProductRepository_DuplicateNamesAllowed(t *testing.T) {
	dbConn := newTestDB(t)
	repo := catalog.NewRepository(dbConn)
	ctx := context.Background()

	first := &catalog.Product{Name: "Espresso", Value: 3.5}
	second := &catalog.Product{Name: "Espresso", Value: 4.0}

	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))
	require.NotEqual(t, first.ID, second.ID)
}

func TestProductRepository_List(t *testing.T) {
	dbConn := newTestDB(t)
	repo := catalog.NewRepository(dbConn)
	ctx := context.Background()

	for _, name := range []string{"Espresso", "Latte", "Mocha"} {
		require.NoError(t, repo.Create(ctx, &catalog.Product{Name: name, Value: 3.5}))
	}

	products, err := repo.List(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, products, 3)
	require.Equal(t, "Espresso", products[0].Name)
	require.Equal(t, "Mocha", products[2].Name)

	page, err := repo.List(ctx, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	require.Equal(t, "Latte", page[0].Name)

	empty, err := repo.List(ctx, 10, 100)
	require.NoError(t, err)
	require.NotNil(t, empty)
	require.Len(t, empty, 0)
}
