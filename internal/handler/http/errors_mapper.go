package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-vault-reconcile/internal/adapter"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/internal/service"
	"github.com/MKhiriev/go-vault-reconcile/internal/store"
	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/MKhiriev/go-vault-reconcile/internal/validators"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

var errorStatusMap = map[error]int{
	service.ErrDomainResolution:        http.StatusUnprocessableEntity,
	service.ErrInvalidRegex:            http.StatusUnprocessableEntity,
	service.ErrEmptyCluster:            http.StatusBadRequest,
	service.ErrValidationNoAccountID:   http.StatusBadRequest,
	service.ErrValidationNoCipherIDs:   http.StatusBadRequest,
	service.ErrValidationNoCiphers:     http.StatusBadRequest,
	service.ErrValidationDuplicateIDs:  http.StatusBadRequest,
	service.ErrValidationInvalidCipher: http.StatusBadRequest,
	service.ErrCipherNotFound:          http.StatusNotFound,
	service.ErrSyncDisabled:            http.StatusNotImplemented,

	validators.ErrUnsupportedType:    http.StatusBadRequest,
	validators.ErrUnknownField:       http.StatusBadRequest,
	validators.ErrEmptyCipherID:      http.StatusBadRequest,
	validators.ErrInvalidCipherType:  http.StatusBadRequest,
	validators.ErrInvalidMatchType:   http.StatusBadRequest,
	validators.ErrEmptyURI:           http.StatusBadRequest,
	validators.ErrEmptyCiphers:       http.StatusBadRequest,
	validators.ErrTooFewCiphers:      http.StatusBadRequest,
	validators.ErrEmptyIDs:           http.StatusBadRequest,
	validators.ErrTooFewIDs:          http.StatusBadRequest,
	validators.ErrDuplicateIDs:       http.StatusBadRequest,
	validators.ErrEmptyURL:           http.StatusBadRequest,
	validators.ErrInvalidSensitivity: http.StatusBadRequest,

	models.ErrUnknownSensitivity: http.StatusBadRequest,
	models.ErrUnknownMatchType:   http.StatusBadRequest,
	models.ErrUnknownCipherType:  http.StatusBadRequest,

	adapter.ErrBadRequest:          http.StatusBadGateway,
	adapter.ErrUnauthorized:        http.StatusBadGateway,
	adapter.ErrForbidden:           http.StatusBadGateway,
	adapter.ErrNotFound:            http.StatusBadGateway,
	adapter.ErrConflict:            http.StatusBadGateway,
	adapter.ErrBadGateway:          http.StatusBadGateway,
	adapter.ErrInternalServerError: http.StatusBadGateway,

	store.ErrCipherNotFound:       http.StatusNotFound,
	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
	store.ErrEncodingCipher:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with its mapped status. Server-side
// failures are reported without details.
func writeServiceError(w http.ResponseWriter, r *http.Request, fn string, err error) {
	status := statusFromError(err)

	message := err.Error()
	switch {
	case errors.Is(err, service.ErrDomainResolution):
		message = service.ErrDomainResolution.Error()
	case status >= http.StatusInternalServerError && status != http.StatusNotImplemented:
		message = http.StatusText(status)
	}

	log := logger.FromRequest(r)
	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("func", fn).Int("status", status).Msg("request failed")

	utils.WriteError(w, message, status)
}
