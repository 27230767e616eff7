package model

import "time"

type RegisterUserRequest struct {
	Fullname string `json:"fullname" validate:"required,max=100"`
	Phone    string `json:"phone" validate:"required,max=20"`
	Pincode  string `json:"pincode" validate:"required,min=4,max=10"`
}

type RegisterUserResponse struct {
	ID int64 `json:"id"`
}

type LoginUserRequest struct {
	Phone   string `json:"phone" validate:"required,max=20"`
	Pincode string `json:"pincode" validate:"required,max=10"`
}

type UserResponse struct {
	ID        int64     `json:"id"`
	Fullname  string    `json:"fullname"`
	Phone     string    `json:"phone"`
	Balance   float64   `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
}

type GetBalanceRequest struct {
	UserID int64 `json:"-" validate:"required,gt=0"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
}

type GetTransactionsRequest struct {
	UserID int64 `json:"-" validate:"required,gt=0"`
}
