package model

import "time"

type Event interface {
	GetId() string
}

// DepositCompletedEvent is published after a webhook deposit has been
// applied, feeding the member-notification side channel.
type DepositCompletedEvent struct {
	EventID     string    `json:"eventId"`
	UserID      int64     `json:"userId"`
	Amount      float64   `json:"amount"`
	Method      string    `json:"method"`
	ProviderRef string    `json:"providerRef,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

func (e *DepositCompletedEvent) GetId() string {
	return e.EventID
}
