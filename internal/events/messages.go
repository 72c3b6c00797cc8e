package events

import (
	"encoding/json"
	"time"
)

const (
	EventTransactionCreated = "transaction.created"
	EventTransactionDeleted = "transaction.deleted"
)

// LedgerEvent is the message published after a ledger mutation.
// Consumers fetch the full record themselves; the event carries only the
// id and kind.
type LedgerEvent struct {
	Event         string    `json:"event"`
	TransactionID string    `json:"transaction_id"`
	Timestamp     time.Time `json:"timestamp"`
}

func NewLedgerEvent(event, transactionID string) *LedgerEvent {
	return &LedgerEvent{
		Event:         event,
		TransactionID: transactionID,
		Timestamp:     time.Now(),
	}
}

func (e *LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func LedgerEventFromJSON(data []byte) (*LedgerEvent, error) {
	var e LedgerEvent
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
