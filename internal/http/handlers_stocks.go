package http

import (
	"net/http"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/log"
)

type analyzeRequest struct {
	Symbol string `json:"symbol"`
}

type analyzeResponse struct {
	StockData  any    `json:"stock_data"`
	AIAnalysis string `json:"ai_analysis"`
}

func (s *Server) handleStockQuote(w http.ResponseWriter, r *http.Request) {
	symbol := r.PathValue("symbol")
	snap, err := s.stocks.Snapshot(r.Context(), symbol)
	if err != nil {
		s.logger.WarnContext(r.Context(), "Quote fetch failed",
			log.FieldError, err,
			log.FieldSymbol, symbol)
		respondDomainError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, snap)
}

func (s *Server) handleAnalyzeStock(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}

	analysis, err := s.stocks.Analyze(r.Context(), req.Symbol)
	if err != nil {
		s.logger.WarnContext(r.Context(), "Stock analysis failed",
			log.FieldError, err,
			log.FieldSymbol, req.Symbol)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, analyzeResponse{
		StockData:  analysis.Snapshot,
		AIAnalysis: analysis.Analysis,
	})
}
