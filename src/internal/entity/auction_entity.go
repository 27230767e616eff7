package entity

import "time"

type Auction struct {
	ID        int64     `json:"id" db:"id"`
	TontineID int64     `json:"tontine_id" db:"tontine_id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	Amount    float64   `json:"amount" db:"amount"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
