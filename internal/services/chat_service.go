package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/whoknows1409/Finance-Tracker-AI/internal/advisor"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/core"
	"github.com/whoknows1409/Finance-Tracker-AI/internal/store"
)

// ChatService runs the conversational loop against the advisory
// gateway. Turns for one session are appended under a per-session lock
// so concurrent requests cannot interleave them.
type ChatService struct {
	store   store.ConversationStore
	advisor advisor.Advisor

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewChatService(st store.ConversationStore, adv advisor.Advisor) *ChatService {
	return &ChatService{
		store:   st,
		advisor: adv,
		locks:   make(map[string]*sync.Mutex),
	}
}

// ChatResult carries the advisor's answer and the session it belongs
// to, minted on first use.
type ChatResult struct {
	SessionID string
	Response  string
}

// Chat asks the advisor with the session's full prior turns as context.
// Both the user turn and the assistant turn are appended only after a
// successful gateway call, so a failed call leaves the session
// untouched.
func (s *ChatService) Chat(ctx context.Context, sessionID, message string) (ChatResult, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return ChatResult{}, core.ErrEmptyMessage
	}

	// A fresh session id cannot be raced: no caller knows it yet.
	if sessionID != "" {
		unlock := s.lockSession(sessionID)
		defer unlock()
	}

	history, err := s.store.History(ctx, sessionID)
	if err != nil {
		return ChatResult{}, fmt.Errorf("load history: %w", err)
	}

	answer, err := s.advisor.Chat(ctx, history, message)
	if err != nil {
		slog.ErrorContext(ctx, "Advisory chat failed",
			"session_id", sessionID, "error", err,
			"component", "chat", "operation", "ask")
		return ChatResult{}, fmt.Errorf("advisory chat: %w", err)
	}

	now := time.Now().UTC()
	sid, err := s.store.Append(ctx, sessionID, core.ChatTurn{Role: core.RoleUser, Text: message, CreatedAt: now})
	if err != nil {
		return ChatResult{}, fmt.Errorf("append user turn: %w", err)
	}
	if _, err := s.store.Append(ctx, sid, core.ChatTurn{Role: core.RoleAssistant, Text: answer, CreatedAt: time.Now().UTC()}); err != nil {
		return ChatResult{}, fmt.Errorf("append assistant turn: %w", err)
	}

	slog.InfoContext(ctx, "Chat turn completed",
		"session_id", sid,
		"history_turns", len(history),
		"component", "chat",
		"operation", "ask")
	return ChatResult{SessionID: sid, Response: answer}, nil
}

// History returns the session's turns in append order; unknown sessions
// yield an empty slice.
func (s *ChatService) History(ctx context.Context, sessionID string) ([]core.ChatTurn, error) {
	return s.store.History(ctx, sessionID)
}

func (s *ChatService) lockSession(id string) func() {
	s.mu.Lock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	s.mu.Unlock()
	l.Lock()
	return l.Unlock
}
