package http

import (
	"net/http"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/log"
)

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := s.ledger.Summary(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Summary computation failed", log.FieldError, err)
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summary)
}
