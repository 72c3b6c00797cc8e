package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/market"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store"
)

const maxBodyBytes = 1 << 20

// respondJSON writes v as a JSON response with the given status.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps an error from the service layer onto the API
// status contract: validation failures are 422, missing resources 404,
// upstream gateway failures 502, anything else 500.
func respondDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, store.ErrTransactionNotFound),
		errors.Is(err, market.ErrSymbolNotFound):
		respondError(w, http.StatusNotFound, err.Error())
	case core.IsValidation(err):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
	case core.IsGateway(err):
		respondError(w, http.StatusBadGateway, err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeJSON reads a bounded JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON body")
	}
	return nil
}

// respondDecodeError distinguishes malformed JSON (400) from bodies
// that parse but carry an invalid domain value (422).
func respondDecodeError(w http.ResponseWriter, err error) {
	if core.IsValidation(err) {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	respondError(w, http.StatusBadRequest, "invalid request body")
}
