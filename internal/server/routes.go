package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"investintake/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/", func(r chi.Router) {
		r.Route("/v1", func(r chi.Router) {
			// unauthorized zone
			r.Get("/deal", handler(s.getV1Deal))

			r.Route("/investors", func(r chi.Router) {
				r.Post("/search", handler(s.postV1InvestorsSearch))
				r.Post("/", handler(s.postV1Investors))
				r.Post("/complete", handler(s.postV1InvestorsComplete))
				r.Get("/{id}/access-link", handler(s.getV1InvestorAccessLink))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, err)
		}
	}
}
