package order

import (
	"errors"
	"fmt"
)

// ErrProductUnresolved is returned when an order is shaped without a resolved
// product reference (product_id null or pointing at a missing product).
var ErrProductUnresolved = errors.New("order product reference is unresolved")

// Response is the client-facing flattened representation of an order merged
// with its product's display fields.
type Response struct {
	ID           int64   `json:"id"`
	ClientName   string  `json:"client_name"`
	ProductID    *int64  `json:"product_id"`
	ProductName  string  `json:"product_name"`
	SugarLevel   bool    `json:"sugar_level"`
	Strength     string  `json:"strength"`
	Syrup        string  `json:"syrup"`
	Value        float64 `json:"value"`
	DeliveryTime int     `json:"delivery_time"`
	Status       string  `json:"status"`
}

// NewResponse shapes a single order. Label lookups degrade to an empty string
// when the stored index is out of range.
func NewResponse(o *Order) (*Response, error) {
	if o.Product == nil {
		return nil, fmt.Errorf("shaping order %d: %w", o.ID, ErrProductUnresolved)
	}

	return &Response{
		ID:           o.ID,
		ClientName:   o.ClientName,
		ProductID:    o.ProductID,
		ProductName:  o.Product.Name,
		SugarLevel:   o.Sugar,
		Strength:     StrengthLabel(o.Strength, ""),
		Syrup:        o.Syrup,
		Value:        o.Product.Value,
		DeliveryTime: o.DeliveryTime,
		Status:       StatusLabel(o.Status, ""),
	}, nil
}

// NewResponses shapes a sequence of orders, preserving order. The first
// unresolved product reference fails the whole batch.
func NewResponses(orders []Order) ([]Response, error) {
	responses := make([]Response, 0, len(orders))
	for i := range orders {
		resp, err := NewResponse(&orders[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, *resp)
	}

	return responses, nil
}
