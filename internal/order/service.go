package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

type Service interface {
	Create(ctx context.Context, order *Order) (*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	List(ctx context.Context, offset, limit int) ([]Order, error)
	UpdateStatus(ctx context.Context, orderID int64, newStatus int) (*Order, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Create persists a new order. Client-supplied status and delivery time are
// discarded: every order starts confirmed with the fixed delivery estimate.
func (s *service) Create(ctx context.Context, order *Order) (*Order, error) {
	order.ID = 0
	order.Status = StatusConfirmed
	order.DeliveryTime = DefaultDeliveryMinutes

	if err := s.repo.Create(ctx, order); err != nil {
		log.Error().Err(err).Msg("service: failed to create order in repository")
		return nil, fmt.Errorf("service: failed to create order: %w", err)
	}

	log.Info().Int64("order_id", order.ID).Str("client_name", order.ClientName).Msg("service: order created")

	return order, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn().Int64("order_id", id).Msg("service: order not found by id")
			return nil, ErrNotFound
		}

		log.Error().Err(err).Msg("service: failed to fetch order by id in repository")
		return nil, fmt.Errorf("service: failed to fetch order by id: %w", err)
	}

	return order, nil
}

func (s *service) List(ctx context.Context, offset, limit int) ([]Order, error) {
	orders, err := s.repo.List(ctx, offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("service: failed to list orders in repository")
		return nil, fmt.Errorf("service: failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus applies a status change when newStatus differs from the current
// value and addresses a known label. Anything else is ignored without error
// and the order is returned as stored. There is no workflow ordering: any
// valid status can follow any other.
func (s *service) UpdateStatus(ctx context.Context, orderID int64, newStatus int) (*Order, error) {
	current, err := s.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if newStatus == current.Status {
		log.Info().Int64("order_id", orderID).Int("status", newStatus).Msg("service: order status is already the same, no update needed")
		return current, nil
	}

	if !ValidStatus(newStatus) {
		log.Warn().Int64("order_id", orderID).Int("new_status", newStatus).Msg("service: unknown status index ignored")
		return current, nil
	}

	if err := s.repo.UpdateStatus(ctx, orderID, newStatus); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}

		log.Error().Err(err).Int64("order_id", orderID).Int("new_status", newStatus).Msg("service: failed to update order status in repository")
		return nil, fmt.Errorf("service: failed to update order status: %w", err)
	}

	log.Info().Int64("order_id", orderID).Int("old_status", current.Status).Int("new_status", newStatus).Msg("service: order status updated")
	current.Status = newStatus

	return current, nil
}
