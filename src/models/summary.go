package models

type Summary struct {
	Amount float64 `json:"amount"`
}
