package handlers

import (
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/finance"
	"fintrack-server/src/middleware"
)

func GetDashboardSummary(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		filter := finance.BuildSummaryFilter(userID, r.URL.Query())
		transactions, err := db.ListTransactions(r.Context(), pool, filter)
		if err != nil {
			log.Printf("ERROR: Failed to load transactions for summary, user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, finance.Summarize(transactions).Response())
	}
}
