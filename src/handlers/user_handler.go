package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	db "fintrack-server/src/db/sql"
	"fintrack-server/src/middleware"
	"fintrack-server/src/util"
)

func GetProfile(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := db.GetUserByID(r.Context(), pool, userID)
		if err != nil {
			if errors.Is(err, db.ErrUserNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			log.Printf("ERROR: Failed to get user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		respondJSON(w, http.StatusOK, user)
	}
}

func ChangePassword(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		var req struct {
			CurrentPassword string `json:"currentPassword"`
			NewPassword     string `json:"newPassword"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode change password request body for user %s: %v", userID, err)
			respondError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		user, err := db.GetUserByID(r.Context(), pool, userID)
		if err != nil {
			log.Printf("ERROR: Failed to get user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
			log.Printf("ERROR: Invalid current password for user %s", userID)
			respondError(w, http.StatusUnauthorized, "Invalid current password")
			return
		}

		if !util.ValidatePassword(req.NewPassword) {
			respondError(w, http.StatusBadRequest, "Password must be at least 8 characters")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash new password for user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := db.UpdateUserPassword(r.Context(), pool, userID, string(hashedPassword)); err != nil {
			log.Printf("ERROR: Failed to update password for user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Password changed for user %s", userID)
		respondJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
	}
}

func DeleteAccount(pool *pgxpool.Pool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := middleware.UserIDFromContext(r.Context())
		if !ok {
			respondError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		// Transactions go with the account via ON DELETE CASCADE.
		if err := db.DeleteUser(r.Context(), pool, userID); err != nil {
			if errors.Is(err, db.ErrUserNotFound) {
				respondError(w, http.StatusNotFound, "User not found")
				return
			}
			log.Printf("ERROR: Failed to delete user %s: %v", userID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Deleted account %s", userID)
		w.WriteHeader(http.StatusNoContent)
	}
}
