package core

import "time"

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type (
	ChatRole string

	// ChatTurn is a single message in a conversation session.
	// Sessions are append-only and live indefinitely.
	ChatTurn struct {
		Role      ChatRole  `json:"role"`
		Text      string    `json:"text"`
		CreatedAt time.Time `json:"timestamp"`
	}
)

func (r ChatRole) Valid() bool {
	return r == RoleUser || r == RoleAssistant
}
