package order

import (
	"github.com/cafezinho/coffee-service/internal/catalog"
)

// Order status indices. Transitions are unrestricted: the patch operation
// accepts any valid index regardless of the current one.
const (
	StatusConfirmed = 0
	StatusPending   = 1
	StatusDelivered = 2
)

// DefaultDeliveryMinutes is assigned to every new order and never
// recalculated.
const DefaultDeliveryMinutes = 30

var statusLabels = []string{
	"Pedido Confirmado",
	"Pedido Pendente",
	"Pedido Entregue",
}

var strengthLabels = []string{
	"Fraco",
	"Médio",
	"Forte",
}

// StatusLabel returns the display label for a status index, or def when the
// index is out of range.
func StatusLabel(index int, def string) string {
	if index < 0 || index >= len(statusLabels) {
		return def
	}
	return statusLabels[index]
}

// StrengthLabel returns the display label for a coffee strength index, or def
// when the index is out of range.
func StrengthLabel(index int, def string) string {
	if index < 0 || index >= len(strengthLabels) {
		return def
	}
	return strengthLabels[index]
}

// ValidStatus reports whether index addresses a known status label.
func ValidStatus(index int) bool {
	return index >= 0 && index < len(statusLabels)
}

type Order struct {
	ID           int64  `json:"id" db:"id"`
	ClientName   string `json:"client_name" db:"client_name"`
	ClientEmail  string `json:"client_email" db:"client_email"`
	ProductID    *int64 `json:"product_id" db:"product_id"`
	Sugar        bool   `json:"sugar" db:"sugar"`
	Strength     int    `json:"strength" db:"strength"`
	Syrup        string `json:"syrup" db:"syrup"`
	DeliveryTime int    `json:"delivery_time" db:"delivery_time"`
	Status       int    `json:"status" db:"status"`
	// Product is the referenced catalog record, resolved by a join on read.
	// Nil when product_id is null or dangling.
	Product *catalog.Product `json:"product" db:"-"`
}
