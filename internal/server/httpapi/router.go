package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

const corsMaxAge = 300

// NewRouter mounts every route with its gate. Browser clients from
// allowedOrigins may call any route cross-origin.
func NewRouter(h *Handler, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         corsMaxAge,
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(h.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", h.root)
	r.Post("/jwt", h.issueToken)

	r.Post("/users", h.createUser)
	r.Get("/menu", h.listMenu)
	r.Get("/menu/{id}", h.getMenuItem)
	r.Get("/reviews", h.listReviews)
	r.Post("/reviews", h.createReview)

	r.Group(func(r chi.Router) {
		r.Use(h.Authenticate)

		r.Get("/users/admin/{email}", h.isAdmin)

		r.Get("/carts", h.listCart)
		r.Post("/carts", h.addToCart)
		r.Delete("/carts/{id}", h.removeFromCart)

		r.Post("/create-payment-intent", h.createPaymentIntent)
		r.Post("/payments", h.recordPayment)
		r.Get("/payments", h.paymentHistory)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireAdmin)

			r.Get("/users", h.listUsers)
			r.Patch("/users/admin/{id}", h.promoteUser)
			r.Delete("/users/{id}", h.deleteUser)

			r.Post("/menu", h.createMenuItem)
			r.Post("/menu/images", h.presignMenuImage)
			r.Put("/menu/{id}", h.updateMenuItem)
			r.Delete("/menu/{id}", h.deleteMenuItem)

			r.Get("/admin-stats", h.adminStats)
		})
	})

	return r
}
