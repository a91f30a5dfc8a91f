package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pxshao1010-gif/independent-station/pkg/metrics"
)

type Handlers struct {
	Health       http.HandlerFunc
	ListProducts http.HandlerFunc
	GetProduct   http.HandlerFunc
	Register     http.HandlerFunc
	Login        http.HandlerFunc
	Me           http.HandlerFunc
	GetCart      http.HandlerFunc
	ReplaceCart  http.HandlerFunc
	Checkout     http.HandlerFunc
	ListOrders   http.HandlerFunc
	PaymentMock  http.HandlerFunc
}

func NewRouter(h *Handlers, auth func(http.Handler) http.Handler, log zerolog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(Recoverer(log))
	r.Use(RequestLogger(log))
	// The SPA is served from a different origin than the API.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))
	r.Use(metrics.Middleware())
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/health", h.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)
		r.Get("/products/{id}", h.GetProduct)
		r.Post("/register", h.Register)
		r.Post("/login", h.Login)
		r.Post("/checkout", h.Checkout)

		r.Group(func(r chi.Router) {
			r.Use(auth)
			r.Get("/me", h.Me)
			r.Get("/cart", h.GetCart)
			r.Post("/cart", h.ReplaceCart)
			r.Get("/orders", h.ListOrders)
		})
	})

	// Mock gateway callback, deliberately unauthenticated.
	r.Get("/knet/mock", h.PaymentMock)

	return r
}
