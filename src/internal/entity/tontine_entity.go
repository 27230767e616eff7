package entity

import "time"

const (
	TontineStatusActive   = "active"
	TontineStatusInactive = "inactive"
)

type Tontine struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	AdminID        int64     `json:"admin_id" db:"admin_id"`
	Frequency      string    `json:"frequency" db:"frequency"`
	AmountToPay    float64   `json:"amount_to_pay" db:"amount_to_pay"`
	CommissionRate float64   `json:"commission_rate" db:"commission_rate"`
	Status         string    `json:"status" db:"status"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
