package model

type InitiatePaymentRequest struct {
	Phone    string  `json:"phone" validate:"required,max=20"`
	Amount   float64 `json:"amount" validate:"required,gt=0"`
	Operator string  `json:"operator" validate:"max=50"`
	UserID   int64   `json:"userId" validate:"required,gt=0"`
}

// WebhookRequest is the provider's asynchronous notification. Nothing is
// marked required: a webhook is never rejected, only ignored.
type WebhookRequest struct {
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
	TransactionID string  `json:"transaction_id"`
	ItemRef       string  `json:"item_ref"`
}

const (
	WebhookApplied   = "applied"
	WebhookIgnored   = "ignored"
	WebhookDuplicate = "duplicate"
)

type WebhookAck struct {
	Result string `json:"result"`
}
