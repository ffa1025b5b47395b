package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cafezinho/coffee-service/internal/catalog"
)

type mockProductRepository struct {
	createFunc  func(ctx context.Context, product *catalog.Product) error
	getByIDFunc func(ctx context.Context, id int64) (*catalog.Product, error)
	listFunc    func(ctx context.Context, offset, limit int) ([]catalog.Product, error)
}

func (m *mockProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	return m.createFunc(ctx, product)
}

func (m *mockProductRepository) GetByID(ctx context.Context, id int64) (*catalog.Product, error) {
	return m.getByIDFunc(ctx, id)
}

func (m *mockProductRepository) List(ctx context.Context, offset, limit int) ([]catalog.Product, error) {
	return m.listFunc(ctx, offset, limit)
}

func TestProductService_Create(t *testing.T) {
	t.Run("assigns_identity", func(t *testing.T) {
		mockRepo := &mockProductRepository{
			createFunc: func(ctx context.Context, product *catalog.Product) error {
				product.ID = 1
				return nil
			},
		}
		svc := catalog.NewService(mockRepo)

		created, err := svc.Create(context.Background(), &catalog.Product{Name: "Espresso", Value: 3.5})
		assert.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("ignores_client_supplied_identity", func(t *testing.T) {
		var received int64
		mockRepo := &mockProductRepository{
			createFunc: func(ctx context.Context, product *catalog.Product) error {
				received = product.ID
				product.ID = 7
				return nil
			},
		}
		svc := catalog.NewService(mockRepo)

		created, err := svc.Create(context.Background(), &catalog.Product{ID: 42, Name: "Espresso", Value: 3.5})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), received)
		assert.Equal(t, int64(7), created.ID)
	})

	t.Run("repository_failure", func(t *testing.T) {
		mockRepo := &mockProductRepository{
			createFunc: func(ctx context.Context, product *catalog.Product) error {
				return errors.New("insert failed")
			},
		}
		svc := catalog.NewService(mockRepo)

		created, err := svc.Create(context.Background(), &catalog.Product{Name: "Espresso", Value: 3.5})
		assert.Error(t, err)
		assert.Nil(t, created)
	})
}

func TestProductService_GetByID(t *testing.T) {
	t.Run("not_found_passes_through", func(t *testing.T) {
		mockRepo := &mockProductRepository{
			getByIDFunc: func(ctx context.Context, id int64) (*catalog.Product, error) {
				return nil, catalog.ErrNotFound
			},
		}
		svc := catalog.NewService(mockRepo)

		product, err := svc.GetByID(context.Background(), 42)
		assert.True(t, errors.Is(err, catalog.ErrNotFound))
		assert.Nil(t, product)
	})

	t.Run("success", func(t *testing.T) {
		mockRepo := &mockProductRepository{
			getByIDFunc: func(ctx context.Context, id int64) (*catalog.Product, error) {
				return &catalog.Product{ID: id, Name: "Espresso", Value: 3.5}, nil
			},
		}
		svc := catalog.NewService(mockRepo)

		product, err := svc.GetByID(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, "Espresso", product.Name)
	})
}
