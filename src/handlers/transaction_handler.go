package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/finance"
	"fintrack-server/src/middleware"
	"fintrack-server/src/models"
)

func ListTransactions(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		filter := finance.BuildTransactionFilter(userID, r.URL.Query())
		transactions, err := db.ListTransactions(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to list transactions for user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, models.TransactionResponses(transactions))
	}
}

func CreateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req models.CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode create transaction request body for user %s: %v", userID, err)
			respondError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		tx, err := finance.ValidateCreate(userID, req, time.Now().UTC())
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := db.CreateTransaction(r.Context(), pool, &tx); err != nil {
			log.Printf("ERROR: Failed to create transaction for user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Created transaction %s for user %s, category %s", tx.ID, userID, tx.Category)
		respondJSON(w, http.StatusCreated, tx.Response())
	}
}

func UpdateTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// A malformed id cannot name an existing record, so it gets the
		// same answer as a foreign-owned one.
		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}

		var req models.UpdateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode update transaction request body for user %s: %v", userID, err)
			respondError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		tx, err := db.GetTransactionByID(r.Context(), pool, userID, id)
		if err != nil {
			if errors.Is(err, db.ErrTransactionNotFound) {
				respondError(w, http.StatusNotFound, "Transaction not found")
				return
			}
			log.Printf("ERROR: Failed to fetch transaction %s for user %s: %v", id, userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := finance.ApplyUpdate(tx, req); err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}

		if err := db.UpdateTransaction(r.Context(), pool, tx); err != nil {
			if errors.Is(err, db.ErrTransactionNotFound) {
				respondError(w, http.StatusNotFound, "Transaction not found")
				return
			}
			log.Printf("ERROR: Failed to update transaction %s for user %s: %v", id, userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Updated transaction %s for user %s", tx.ID, userID)
		respondJSON(w, http.StatusOK, tx.Response())
	}
}

func DeleteTransaction(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			respondError(w, http.StatusNotFound, "Transaction not found")
			return
		}

		if err := db.DeleteTransaction(r.Context(), pool, userID, id); err != nil {
			if errors.Is(err, db.ErrTransactionNotFound) {
				respondError(w, http.StatusNotFound, "Transaction not found")
				return
			}
			log.Printf("ERROR: Failed to delete transaction %s for user %s: %v", id, userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Deleted transaction %s for user %s", id, userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
