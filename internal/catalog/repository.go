package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var ErrNotFound = errors.New("product not found")

type Repository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
}

type sqliteRepository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) Create(ctx context.Context, product *Product) error {
	query := `INSERT INTO product (name, value) VALUES (:name, :value)`

	res, err := r.db.NamedExecContext(ctx, query, product)
	if err != nil {
		return fmt.Errorf("repository: failed to insert product: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("repository: failed to read product id: %w", err)
	}
	product.ID = id

	return nil
}

func (r *sqliteRepository) GetByID(ctx context.Context, id int64) (*Product, error) {
	query := `SELECT id, name, value FROM product WHERE id = ?`

	var product Product
	err := r.db.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("repository: failed to select product by id %d: %w", id, err)
	}

	return &product, nil
}

func (r *sqliteRepository) List(ctx context.Context, offset, limit int) ([]Product, error) {
	query := `SELECT id, name, value FROM product ORDER BY id LIMIT ? OFFSET ?`

	products := make([]Product, 0)
	err := r.db.SelectContext(ctx, &products, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list products: %w", err)
	}

	return products, nil
}
