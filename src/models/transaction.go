package models

import "time"

// Transaction type discriminator accepted on create. It is consumed to
// compute the sign of the stored amount and never persisted.
const (
	TypeCredit = "credit"
	TypeDebit  = "debit"
)

type Transaction struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Amount    float64   `json:"amount"`
	SessionID string    `json:"session_id"`
	CreatedAt time.Time `json:"created_at"`
}
