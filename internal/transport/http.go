package transport

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"github.com/cafezinho/coffee-service/internal/catalog"
	"github.com/cafezinho/coffee-service/internal/handler"
	"github.com/cafezinho/coffee-service/internal/order"
	"github.com/cafezinho/coffee-service/web"
)

// NewRouter wires repositories, services and handlers onto a chi mux.
func NewRouter(dbConn *sqlx.DB) (*chi.Mux, error) {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	productRepo := catalog.NewRepository(dbConn)
	productSvc := catalog.NewService(productRepo)
	orderRepo := order.NewRepository(dbConn)
	orderSvc := order.NewService(orderRepo)

	productHandler := handler.NewProductHandler(productSvc)
	productHandler.RegisterRoutes(r)

	orderHandler := handler.NewOrderHandler(orderSvc)
	orderHandler.RegisterRoutes(r)

	pageHandler, err := handler.NewPageHandler(productSvc, orderSvc)
	if err != nil {
		return nil, err
	}
	pageHandler.RegisterRoutes(r)

	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return nil, err
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	return r, nil
}
