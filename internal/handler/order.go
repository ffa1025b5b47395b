package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/cafezinho/coffee-service/internal/order"
)

// CreateOrderRequest carries the client-settable order fields. Status and
// delivery time are deliberately absent: the service assigns them.
type CreateOrderRequest struct {
	ClientName  string `json:"client_name" validate:"required"`
	ClientEmail string `json:"client_email" validate:"required"`
	ProductID   *int64 `json:"product_id"`
	Sugar       bool   `json:"sugar"`
	Strength    int    `json:"strength"`
	Syrup       string `json:"syrup"`
}

// UpdateOrderStatusRequest is the PATCH body: the id field is the new status
// index. A pointer so that status 0 passes the required check.
type UpdateOrderStatusRequest struct {
	ID *int `json:"id" validate:"required"`
}

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	svc      order.Service
	validate *validator.Validate
}

func NewOrderHandler(svc order.Service) *OrderHandler {
	return &OrderHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

func (h *OrderHandler) RegisterRoutes(router chi.Router) {
	router.Post("/orders", h.CreateOrder)
	router.Get("/orders", h.ListOrders)
	router.Get("/orders/{id}", h.GetOrderByID)
	router.Patch("/orders/{id}/status", h.UpdateOrderStatus)
}

// CreateOrder persists a new order and returns it raw (unshaped). The product
// relation is not resolved on this path.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			respondWithError(w, http.StatusUnprocessableEntity, formatValidationErrors(validationErrors))
			return
		}
		log.Error().Err(err).Msg("Unexpected error type during validation")
		respondWithError(w, http.StatusInternalServerError, "internal validation error")
		return
	}

	o := order.Order{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ProductID:   req.ProductID,
		Sugar:       req.Sugar,
		Strength:    req.Strength,
		Syrup:       req.Syrup,
	}

	created, err := h.svc.Create(r.Context(), &o)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create order")
		respondWithError(w, mapErrorToStatusCode(err), "failed to create order")
		return
	}

	respondWithJSON(w, http.StatusCreated, created)
}

func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	orders, err := h.svc.List(r.Context(), offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list orders")
		respondWithError(w, mapErrorToStatusCode(err), "failed to list orders")
		return
	}

	responses, err := order.NewResponses(orders)
	if err != nil {
		log.Error().Err(err).Msg("Failed to shape orders")
		respondWithError(w, http.StatusInternalServerError, "failed to build order response")
		return
	}

	respondWithJSON(w, http.StatusOK, responses)
}

func (h *OrderHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "invalid order id")
		return
	}

	o, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Error().Err(err).Msg("Failed to get order by id")
		respondWithError(w, mapErrorToStatusCode(err), "failed to get order")
		return
	}

	h.respondShaped(w, o)
}

// UpdateOrderStatus applies the status patch. Invalid or unchanged status ids
// are ignored by the service; either way the current shaped order comes back.
func (h *OrderHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "invalid order id")
		return
	}

	var req UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			respondWithError(w, http.StatusUnprocessableEntity, formatValidationErrors(validationErrors))
			return
		}
		log.Error().Err(err).Msg("Unexpected error type during validation")
		respondWithError(w, http.StatusInternalServerError, "internal validation error")
		return
	}

	o, err := h.svc.UpdateStatus(r.Context(), id, *req.ID)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			respondWithError(w, http.StatusNotFound, "Order not found")
			return
		}
		log.Error().Err(err).Msg("Failed to update order status")
		respondWithError(w, mapErrorToStatusCode(err), "failed to update order status")
		return
	}

	h.respondShaped(w, o)
}

func (h *OrderHandler) respondShaped(w http.ResponseWriter, o *order.Order) {
	resp, err := order.NewResponse(o)
	if err != nil {
		log.Error().Err(err).Int64("order_id", o.ID).Msg("Failed to shape order")
		respondWithError(w, http.StatusInternalServerError, "failed to build order response")
		return
	}

	respondWithJSON(w, http.StatusOK, resp)
}
