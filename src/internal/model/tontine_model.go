package model

import "time"

type CreateTontineRequest struct {
	Name           string  `json:"name" validate:"required,max=100"`
	AdminID        int64   `json:"admin_id" validate:"required,gt=0"`
	Frequency      string  `json:"frequency" validate:"required,max=50"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	CommissionRate float64 `json:"commission_rate" validate:"gte=0"`
}

type TontineResponse struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	AdminID        int64     `json:"admin_id"`
	Frequency      string    `json:"frequency"`
	AmountToPay    float64   `json:"amount_to_pay"`
	CommissionRate float64   `json:"commission_rate"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

type ListAuctionsRequest struct {
	TontineID int64 `json:"-" validate:"required,gt=0"`
}
