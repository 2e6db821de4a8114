package http

import (
	"net/http"

	"github.com/MKhiriev/go-vault-reconcile/internal/utils"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

func (h *Handler) findVaultDuplicates(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.findVaultDuplicates"
	accountID, _ := utils.GetAccountIDFromContext(r.Context())

	sensitivity, err := h.resolveSensitivity(r.URL.Query().Get("sensitivity"))
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	groups, err := h.services.VaultService.FindDuplicates(r.Context(), accountID, sensitivity)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, models.DuplicatesResponse{Groups: nonNil(groups), Length: len(groups)}, http.StatusOK)
}

func (h *Handler) mergeVaultCiphers(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.mergeVaultCiphers"
	accountID, _ := utils.GetAccountIDFromContext(r.Context())

	var req models.VaultMergeRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	merged, err := h.services.VaultService.MergeCiphers(r.Context(), accountID, req.CipherIDs)
	if err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	utils.WriteJSON(w, merged, http.StatusOK)
}

func (h *Handler) importCiphers(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.importCiphers"
	accountID, _ := utils.GetAccountIDFromContext(r.Context())

	var req models.ImportRequest
	if !decodeJSON(w, r, fn, &req) {
		return
	}

	if err := h.services.VaultService.ImportCiphers(r.Context(), accountID, req.Ciphers); err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) syncEquivalentDomains(w http.ResponseWriter, r *http.Request) {
	const fn = "*Handler.syncEquivalentDomains"
	accountID, _ := utils.GetAccountIDFromContext(r.Context())

	if err := h.services.VaultService.SyncEquivalentDomains(r.Context(), accountID); err != nil {
		writeServiceError(w, r, fn, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
