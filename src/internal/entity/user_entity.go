package entity

import "time"

type User struct {
	ID          int64     `json:"id" db:"id"`
	Fullname    string    `json:"fullname" db:"fullname"`
	Phone       string    `json:"phone" db:"phone"`
	PincodeHash string    `json:"-" db:"pincode_hash"`
	Balance     float64   `json:"balance" db:"balance"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
