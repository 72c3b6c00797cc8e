package http

import (
	"net/http"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/log"
)

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

type chatResponse struct {
	Response  string `json:"response"`
	SessionID string `json:"session_id"`
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondDecodeError(w, err)
		return
	}

	result, err := s.chat.Chat(r.Context(), req.SessionID, req.Message)
	if err != nil {
		s.logger.WarnContext(r.Context(), "Chat turn failed",
			log.FieldError, err,
			log.FieldSessionID, req.SessionID)
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, chatResponse{
		Response:  result.Response,
		SessionID: result.SessionID,
	})
}

func (s *Server) handleChatHistory(w http.ResponseWriter, r *http.Request) {
	sessionID := r.PathValue("session_id")
	turns, err := s.chat.History(r.Context(), sessionID)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "History read failed",
			log.FieldError, err,
			log.FieldSessionID, sessionID)
		respondDomainError(w, err)
		return
	}
	if turns == nil {
		turns = []core.ChatTurn{}
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"session_id": sessionID,
		"history":    turns,
	})
}
