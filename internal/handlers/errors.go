package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"showbook/internal/interfaces"
	"showbook/internal/logging"
)

// pathID reads an integer id from the URL. A malformed id is reported as not
// found, matching an id that does not exist.
func pathID(w http.ResponseWriter, r *http.Request, param, resource string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, param))
	if err != nil || id <= 0 {
		writeNotFound(w, resource)
		return 0, false
	}
	return id, true
}

func writeNotFound(w http.ResponseWriter, resource string) {
	writeJSONErrorResponse(w, http.StatusNotFound, "not_found", resource+" not found")
}

func writeValidationError(w http.ResponseWriter, err error) {
	var verr *interfaces.ValidationError
	if !errors.As(err, &verr) {
		writeJSONErrorResponse(w, http.StatusBadRequest, "validation_error", "Invalid form submission")
		return
	}
	writeJSON(w, http.StatusBadRequest, map[string]any{
		"error":   "validation_error",
		"message": "Invalid form submission",
		"fields":  verr.Fields,
	})
}

// writeStoreError maps a repository error onto a response. failure is the
// user-facing notice for persistence failures; the error itself is only logged.
func writeStoreError(w http.ResponseWriter, r *http.Request, err error, resource, failure string) {
	if errors.Is(err, interfaces.ErrNotFound) {
		writeNotFound(w, resource)
		return
	}

	var blocked *interfaces.DeletionBlockedError
	if errors.As(err, &blocked) {
		writeJSON(w, http.StatusConflict, map[string]any{
			"error":      "deletion_blocked",
			"message":    resource + " is still referenced by shows and could not be deleted.",
			"references": blocked.References,
		})
		return
	}

	logging.FromContext(r.Context()).Error().Err(err).Str("resource", resource).Msg("store operation failed")

	var pe *interfaces.PersistenceError
	if errors.As(err, &pe) && pe.Kind == interfaces.KindForeignKey {
		writeJSONErrorResponse(w, http.StatusBadRequest, "invalid_reference", failure)
		return
	}
	writeJSONErrorResponse(w, http.StatusInternalServerError, "persistence_error", failure)
}
