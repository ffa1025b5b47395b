package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Service interface {
	Create(ctx context.Context, product *Product) (*Product, error)
	GetByID(ctx context.Context, id int64) (*Product, error)
	List(ctx context.Context, offset, limit int) ([]Product, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create persists a new product. There is no duplicate-name check and the
// price is stored as given.
func (s *service) Create(ctx context.Context, product *Product) (*Product, error) {
	product.ID = 0

	if err := s.repo.Create(ctx, product); err != nil {
		log.Error().Err(err).Msg("service: failed to create product in repository")
		return nil, fmt.Errorf("service: failed to create product: %w", err)
	}

	log.Info().Int64("product_id", product.ID).Str("name", product.Name).Msg("service: product created")

	return product, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Int64("product_id", id).Msg("service: product not found by id")
			return nil, ErrNotFound
		}

		log.Error().Err(err).Msg("service: failed to fetch product by id in repository")
		return nil, fmt.Errorf("service: failed to fetch product by id: %w", err)
	}

	return product, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]Product, error) {
	products, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list products in repository")
		return nil, fmt.Errorf("service: failed to list products: %w", err)
	}

	return products, nil
}
