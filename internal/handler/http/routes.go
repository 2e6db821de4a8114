package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)

		r.Post("/duplicates", h.findDuplicates)
		r.Post("/merge", h.mergeCiphers)
		r.Post("/match", h.matchURI)
		r.Post("/broad-uris", h.findBroadURIs)

		if h.services.VaultService != nil {
			r.Route("/vault/{accountID}", func(r chi.Router) {
				r.Use(withAccountID)

				r.Get("/duplicates", h.findVaultDuplicates)
				r.Post("/merge", h.mergeVaultCiphers)
				r.Post("/ciphers", h.importCiphers)
				r.Post("/equivalent-domains/sync", h.syncEquivalentDomains)
			})
		}
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(notFound)

	return router
}
