package model

type SocialFundResponse struct {
	Total float64 `json:"total"`
}
