package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/cafezinho/coffee-service/internal/catalog"
)

var ErrNotFound = errors.New("order not found")

type Repository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	UpdateStatus(ctx context.Context, id int64, status int) error
}

type sqliteRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &sqliteRepository{db: db}
}

// orderRow carries an order joined with its product columns. The product
// columns are nullable because the reference is optional and unenforced.
type orderRow struct {
	Order
	ProductName  *string  `db:"product_name"`
	ProductValue *float64 `db:"product_value"`
}

func (row *orderRow) toOrder() Order {
	o := row.Order
	if o.ProductID != nil && row.ProductName != nil && row.ProductValue != nil {
		o.Product = &catalog.Product{
			ID:    *o.ProductID,
			Name:  *row.ProductName,
			Value: *row.ProductValue,
		}
	}
	return o
}

const selectOrderColumns = `
	SELECT o.id, o.client_name, o.client_email, o.product_id, o.sugar,
	       o.strength, o.syrup, o.delivery_time, o.status,
	       p.name AS product_name, p.value AS product_value
	FROM orders o
	LEFT JOIN product p ON p.id = o.product_id
`

func (r *sqliteRepository) Create(ctx context.Context, order *Order) error {
	query := `
		INSERT INTO orders (client_name, client_email, product_id, sugar, strength, syrup, delivery_time, status)
		VALUES (:client_name, :client_email, :product_id, :sugar, :strength, :syrup, :delivery_time, :status)
	`

	res, err := r.db.NamedExecContext(ctx, query, order)
	if err != nil {
		return fmt.Errorf("repository: failed to insert order: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("repository: failed to read order id: %w", err)
	}
	order.ID = id

	return nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*Order, error) {
	query := selectOrderColumns + ` WHERE o.id = ?`

	var row orderRow
	err := r.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("repository: failed to select order by id %d: %w", id, err)
	}

	o := row.toOrder()
	return &o, nil
}

func (r *sqliteRepository) List(ctx context.Context, offset, limit int) ([]Order, error) {
	query := selectOrderColumns + ` ORDER BY o.id LIMIT ? OFFSET ?`

	rows := make([]orderRow, 0)
	err := r.db.SelectContext(ctx, &rows, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list orders: %w", err)
	}

	orders := make([]Order, 0, len(rows))
	for i := range rows {
		orders = append(orders, rows[i].toOrder())
	}

	return orders, nil
}

func (r *sqliteRepository) UpdateStatus(ctx context.Context, id int64, status int) error {
	query := `UPDATE orders SET status = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		log.Error().Err(err).Int64("order_id", id).Int("new_status", status).Msg("repository: failed to update order status")
		return fmt.Errorf("repository: failed to update order status %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("repository: failed to read affected rows for order %d: %w", id, err)
	}

	if affected == 0 {
		log.Warn().Int64("order_id", id).Int("new_status", status).Msg("repository: order not found for status update")
		return ErrNotFound
	}

	return nil
}
