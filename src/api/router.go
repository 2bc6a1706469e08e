package api

import (
	"net/http"

	"finledger-server/src/handlers"
	"finledger-server/src/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(store handlers.Store) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.CORSMiddleware)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", handlers.CreateTransaction(store))

		// Guarded routes
		r.With(middleware.SessionAuthMiddleware).Group(func(r chi.Router) {
			r.Get("/", handlers.GetTransactions(store))
			r.Get("/sumary", handlers.GetTransactionSummary(store))
			r.Get("/{id}", handlers.GetTransactionByID(store))
		})
	})

	return r
}
