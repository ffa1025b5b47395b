package handler

import (
	"html/template"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/cafezinho/coffee-service/internal/catalog"
	"github.com/cafezinho/coffee-service/internal/order"
	"github.com/cafezinho/coffee-service/web"
)

const placeholderOrderStatus = "Seu pedido ainda não foi realizado."

type indexPage struct {
	Products    []catalog.Product
	OrderStatus string
}

// PageHandler serves the server-rendered order page.
type PageHandler struct {
	products catalog.Service
	orders   order.Service
	tmpl     *template.Template
}

func NewPageHandler(products catalog.Service, orders order.Service) (*PageHandler, error) {
	tmpl, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		products: products,
		orders:   orders,
		tmpl:     tmpl,
	}, nil
}

func (h *PageHandler) RegisterRoutes(router chi.Router) {
	router.Get("/", h.Index)
	router.Post("/", h.CreateOrder)
}

// Index renders the product listing and order form. The status message is a
// fixed placeholder until an order is placed.
func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	products, err := h.products.List(r.Context(), offset, limit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products for index page")
		respondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	h.render(w, indexPage{Products: products, OrderStatus: placeholderOrderStatus})
}

// CreateOrder takes the order form, coerces the checkbox value at the
// boundary and re-renders the index page with the new order's status label.
func (h *PageHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusUnprocessableEntity, "invalid form body")
		return
	}

	o := order.Order{
		ClientName:  r.PostFormValue("client_name"),
		ClientEmail: r.PostFormValue("client_email"),
		// Checkbox semantics: the browser sends "on" when checked and
		// omits the field otherwise.
		Sugar: r.PostFormValue("sugar") == "on",
		Syrup: r.PostFormValue("syrup"),
	}

	if raw := r.PostFormValue("product_id"); raw != "" {
		productID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, "invalid product id")
			return
		}
		o.ProductID = &productID
	}

	if raw := r.PostFormValue("strength"); raw != "" {
		strength, err := strconv.Atoi(raw)
		if err != nil {
			respondWithError(w, http.StatusUnprocessableEntity, "invalid strength")
			return
		}
		o.Strength = strength
	}

	created, err := h.orders.Create(r.Context(), &o)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create order from form")
		respondWithError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	products, err := h.products.List(r.Context(), 0, defaultPageLimit)
	if err != nil {
		log.Error().Err(err).Msg("Failed to list products after order creation")
		respondWithError(w, http.StatusInternalServerError, "failed to list products")
		return
	}

	h.render(w, indexPage{Products: products, OrderStatus: order.StatusLabel(created.Status, "")})
}

func (h *PageHandler) render(w http.ResponseWriter, page indexPage) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.tmpl.ExecuteTemplate(w, "index.html", page); err != nil {
		log.Error().Err(err).Msg("Failed to render index template")
	}
}
