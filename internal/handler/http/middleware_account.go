package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// withAccountID copies the {accountID} path parameter into the request
// context and the request logger.
func withAccountID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "accountID")

		log := logger.FromRequest(r)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("account_id", accountID)
		})

		ctx := utils.WithAccountID(log.WithContext(r.Context()), accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
