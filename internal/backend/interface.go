// Package backend selects and constructs the persistence backend from
// configuration. Store handles are built here, at the process boundary,
// and injected into the services that use them.
package backend

import "github.com/whoknows1409/Finance-Tracker-AI/internal/store"

// Backend bundles the two store ports every backend implements.
type Backend interface {
	store.TransactionStore
	store.ConversationStore
}

// CleanupFunc releases backend resources at shutdown.
type CleanupFunc func() error

// Result contains the backend instance and an optional cleanup func.
type Result struct {
	Backend Backend
	Cleanup CleanupFunc
}

// Type identifies a backend implementation.
type Type string

const (
	MemoryBackend Type = "memory"
	SQLiteBackend Type = "sqlite"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case MemoryBackend, SQLiteBackend:
		return true
	default:
		return false
	}
}

// Config holds what backend construction needs.
type Config struct {
	Type         Type
	SQLiteDBPath string
}
