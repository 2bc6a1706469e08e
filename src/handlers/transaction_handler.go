package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"finledger-server/src/db"
	"finledger-server/src/middleware"
	"finledger-server/src/models"
	"finledger-server/src/util"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Store is the transaction storage the handlers run against. The pgx
// implementation lives in src/db/sql.
type Store interface {
	CreateTransaction(ctx context.Context, transaction *models.Transaction) (*models.Transaction, error)
	GetTransactionsBySession(ctx context.Context, sessionID string) ([]models.Transaction, error)
	GetTransactionByID(ctx context.Context, sessionID, id string) (*models.Transaction, error)
	GetSessionSummary(ctx context.Context, sessionID string) (*models.Summary, error)
}

// sessionCookieMaxAge is seven days, in seconds.
const sessionCookieMaxAge = 60 * 60 * 24 * 7

func CreateTransaction(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Title  string   `json:"title"`
			Amount *float64 `json:"amount"`
			Type   string   `json:"type"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body: %v", err)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}
		if !util.ValidateTitle(req.Title) || req.Amount == nil || !util.ValidateTransactionType(req.Type) {
			log.Printf("ERROR: Create transaction validation failed - Title: %q, Type: %q", req.Title, req.Type)
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		// Reuse the caller's session if one exists, otherwise establish it.
		var sessionID string
		if cookie, err := r.Cookie(middleware.SessionCookieName); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		} else {
			sessionID = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:   middleware.SessionCookieName,
				Value:  sessionID,
				Path:   "/",
				MaxAge: sessionCookieMaxAge,
			})
		}

		amount := *req.Amount
		if req.Type == models.TypeDebit {
			amount = amount * -1
		}

		transaction := &models.Transaction{
			ID:        uuid.NewString(),
			Title:     req.Title,
			Amount:    amount,
			SessionID: sessionID,
		}
		created, err := store.CreateTransaction(r.Context(), transaction)
		if err != nil {
			log.Printf("ERROR: Failed to create transaction for session %s: %v", sessionID, err)
			http.Error(w, "failed to create transaction", http.StatusInternalServerError)
			return
		}

		// The session's cached summary is stale as of this insert.
		db.DelSummaryCache(db.SummaryCacheKey(sessionID))

		log.Printf("INFO: Created transaction %s for session %s", created.ID, sessionID)
		w.WriteHeader(http.StatusCreated)
	}
}

func GetTransactions(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Context().Value("session_id").(string)

		transactions, err := store.GetTransactionsBySession(r.Context(), sessionID)
		if err != nil {
			log.Printf("ERROR: Failed to get transactions for session %s: %v", sessionID, err)
			http.Error(w, "failed to get transactions", http.StatusInternalServerError)
			return
		}
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"transactions": transactions,
		})
	}
}

func GetTransactionByID(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Context().Value("session_id").(string)
		id := chi.URLParam(r, "id")
		if _, err := uuid.Parse(id); err != nil {
			log.Printf("ERROR: Invalid transaction id param: %s", id)
			http.Error(w, "invalid transaction id", http.StatusBadRequest)
			return
		}

		// A transaction owned by another session comes back nil, exactly
		// like a nonexistent one.
		transaction, err := store.GetTransactionByID(r.Context(), sessionID, id)
		if err != nil {
			log.Printf("ERROR: Failed to get transaction %s for session %s: %v", id, sessionID, err)
			http.Error(w, "failed to get transaction", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"transactions": transaction,
		})
	}
}

func GetTransactionSummary(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Context().Value("session_id").(string)

		w.Header().Set("Content-Type", "application/json")

		cacheKey := db.SummaryCacheKey(sessionID)
		if cached, found := db.Cache.Get(cacheKey); found {
			if summary, ok := cached.(*models.Summary); ok {
				json.NewEncoder(w).Encode(summary)
				return
			}
		}

		summary, err := store.GetSessionSummary(r.Context(), sessionID)
		if err != nil {
			log.Printf("ERROR: Failed to get summary for session %s: %v", sessionID, err)
			http.Error(w, "failed to get summary", http.StatusInternalServerError)
			return
		}
		db.SetSummaryCache(cacheKey, summary)
		json.NewEncoder(w).Encode(summary)
	}
}
