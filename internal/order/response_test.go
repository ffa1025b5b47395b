package order_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cafezinho/coffee-service/internal/catalog"
	"github.com/cafezinho/coffee-service/internal/order"
)

func int64Ptr(v int64) *int64 {
	return &v
}

func TestNewResponse(t *testing.T) {
	productID := int64Ptr(1)
	espresso := &catalog.Product{ID: 1, Name: "Espresso", Value: 3.5}

	tests := []struct {
		name     string
		order    *order.Order
		expected *order.Response
		wantErr  error
	}{
		{
			name: "full_mapping",
			order: &order.Order{
				ID:           1,
				ClientName:   "Ana",
				ClientEmail:  "a@x.com",
				ProductID:    productID,
				Sugar:        false,
				Strength:     2,
				Syrup:        "caramelo",
				DeliveryTime: 30,
				Status:       2,
				Product:      espresso,
			},
			expected: &order.Response{
				ID:           1,
				ClientName:   "Ana",
				ProductID:    productID,
				ProductName:  "Espresso",
				SugarLevel:   false,
				Strength:     "Forte",
				Syrup:        "caramelo",
				Value:        3.5,
				DeliveryTime: 30,
				Status:       "Pedido Entregue",
			},
		},
		{
			name: "out_of_range_indices_degrade_to_empty_labels",
			order: &order.Order{
				ID:           2,
				ClientName:   "Bia",
				ProductID:    productID,
				Strength:     9,
				DeliveryTime: 30,
				Status:       -4,
				Product:      espresso,
			},
			expected: &order.Response{
				ID:           2,
				ClientName:   "Bia",
				ProductID:    productID,
				ProductName:  "Espresso",
				Strength:     "",
				Value:        3.5,
				DeliveryTime: 30,
				Status:       "",
			},
		},
		{
			name: "unresolved_product",
			order: &order.Order{
				ID:         3,
				ClientName: "Caio",
				ProductID:  int64Ptr(999),
			},
			wantErr: order.ErrProductUnresolved,
		},
		{
			name: "null_product_id",
			order: &order.Order{
				ID:         4,
				ClientName: "Duda",
			},
			wantErr: order.ErrProductUnresolved,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := order.NewResponse(tt.order)
			if tt.wantErr != nil {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.Nil(t, resp)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, resp)
		})
	}
}

func TestNewResponses(t *testing.T) {
	espresso := &catalog.Product{ID: 1, Name: "Espresso", Value: 3.5}
	latte := &catalog.Product{ID: 2, Name: "Latte", Value: 5.0}

	orders := []order.Order{
		{ID: 1, ClientName: "Ana", ProductID: int64Ptr(1), Product: espresso},
		{ID: 2, ClientName: "Bia", ProductID: int64Ptr(2), Product: latte},
	}

	responses, err := order.NewResponses(orders)
	assert.NoError(t, err)
	assert.Len(t, responses, 2)
	assert.Equal(t, "Espresso", responses[0].ProductName)
	assert.Equal(t, "Latte", responses[1].ProductName)

	t.Run("dangling_reference_fails_whole_batch", func(t *testing.T) {
		orders := []order.Order{
			{ID: 1, ClientName: "Ana", ProductID: int64Ptr(1), Product: espresso},
			{ID: 2, ClientName: "Bia", ProductID: int64Ptr(999)},
		}

		responses, err := order.NewResponses(orders)
		assert.True(t, errors.Is(err, order.ErrProductUnresolved))
		assert.Nil(t, responses)
	})

	t.Run("empty_input", func(t *testing.T) {
		responses, err := order.NewResponses(nil)
		assert.NoError(t, err)
		assert.NotNil(t, responses)
		assert.Len(t, responses, 0)
	})
}
