package db

import (
	"context"
	"errors"

	"finledger-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store runs the transaction queries against a pgx pool. Every read
// filters on session_id; that filter is the whole authorization model.
type Store struct {
	Pool *pgxpool.Pool
}

func (s *Store) CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (id, title, amount, session_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, title, amount, session_id, created_at
	`
	var t models.Transaction
	err := s.Pool.QueryRow(ctx, query, transaction.ID, transaction.Title, transaction.Amount, transaction.SessionID).
		Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetTransactionsBySession(ctx context.Context, sessionID string) ([]models.Transaction, error) {
	query := `
		SELECT id, title, amount, session_id, created_at
		FROM transactions
		WHERE session_id = $1
		ORDER BY created_at
	`
	rows, err := s.Pool.Query(ctx, query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var t models.Transaction
		err := rows.Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}

// GetTransactionByID returns (nil, nil) when no row matches both the id
// and the session, so a foreign transaction is indistinguishable from a
// nonexistent one.
func (s *Store) GetTransactionByID(ctx context.Context, sessionID, id string) (*models.Transaction, error) {
	query := `
		SELECT id, title, amount, session_id, created_at
		FROM transactions
		WHERE id = $1 AND session_id = $2
	`
	var t models.Transaction
	err := s.Pool.QueryRow(ctx, query, id, sessionID).
		Scan(&t.ID, &t.Title, &t.Amount, &t.SessionID, &t.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *Store) GetSessionSummary(ctx context.Context, sessionID string) (*models.Summary, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0) AS amount
		FROM transactions
		WHERE session_id = $1
	`
	var summary models.Summary
	err := s.Pool.QueryRow(ctx, query, sessionID).Scan(&summary.Amount)
	if err != nil {
		return nil, err
	}
	return &summary, nil
}
