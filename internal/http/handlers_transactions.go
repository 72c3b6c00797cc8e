package http

import (
	"net/http"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/log"
)

type createTransactionRequest struct {
	Type        string     `json:"type"`
	Amount      core.Money `json:"amount"`
	Category    string     `json:"category"`
	Description string     `json:"description"`
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}

	tx, err := s.ledger.Create(r.Context(), core.Transaction{
		Type:        core.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
	})
	if err != nil {
		s.logger.WarnContext(r.Context(), "Transaction rejected",
			log.FieldError, err,
			log.FieldCategory, req.Category)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, tx)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	txs, err := s.ledger.List(r.Context())
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Transaction list failed", log.FieldError, err)
		respondDomainError(w, err)
		return
	}
	if txs == nil {
		txs = []core.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.ledger.Delete(r.Context(), id); err != nil {
		s.logger.WarnContext(r.Context(), "Transaction delete failed",
			log.FieldError, err,
			log.FieldTransaction, id)
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "transaction deleted"})
}
