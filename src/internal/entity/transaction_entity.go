package entity

import (
	"database/sql"
	"time"
)

const (
	TransactionTypeDeposit     = "deposit"
	TransactionStatusCompleted = "completed"
	TransactionMethodMobile    = "mobile_money"
)

// Transaction is an append-only ledger row. ProviderRef carries the payment
// provider's own notification id and is unique when present.
type Transaction struct {
	ID          int64          `json:"id" db:"id"`
	UserID      int64          `json:"user_id" db:"user_id"`
	Amount      float64        `json:"amount" db:"amount"`
	Type        string         `json:"type" db:"type"`
	Status      string         `json:"status" db:"status"`
	Method      string         `json:"method" db:"method"`
	ProviderRef sql.NullString `json:"-" db:"provider_ref"`
	CreatedAt   time.Time      `json:"created_at" db:"created_at"`
}
