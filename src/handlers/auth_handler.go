package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"

	"fintrack-server/src/config"
	db "fintrack-server/src/db/sql"
	"fintrack-server/src/models"
	"fintrack-server/src/util"
)

const tokenLifetime = 7 * 24 * time.Hour

func signToken(userID string, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString([]byte(secret))
}

func Register(pool *pgxpool.Pool, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode register request body: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" {
			respondError(w, http.StatusBadRequest, "Email is required")
			return
		}
		if req.Password == "" {
			respondError(w, http.StatusBadRequest, "Password is required")
			return
		}
		if !util.ValidateEmail(email) {
			log.Printf("ERROR: Email validation failed during registration - Email: %s", email)
			respondError(w, http.StatusBadRequest, "Invalid email format")
			return
		}
		if !util.ValidatePassword(req.Password) {
			respondError(w, http.StatusBadRequest, "Password must be at least 8 characters")
			return
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("ERROR: Failed to hash password for %s: %v", email, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		user, err := db.CreateUser(r.Context(), pool, email, string(hashedPassword))
		if err != nil {
			// Handle duplicate key
			if strings.Contains(err.Error(), "duplicate key") {
				log.Printf("ERROR: Registration failed - email already registered: %s", email)
				respondError(w, http.StatusBadRequest, "Email already registered")
				return
			}
			log.Printf("ERROR: Failed to create user %s: %v", email, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		token, err := signToken(user.ID.String(), cfg.JWTSecret)
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for user %s: %v", user.ID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Successful registration - User: %s, ID: %s", user.Email, user.ID)
		respondJSON(w, http.StatusCreated, models.AuthResponse{
			Token: token,
			User:  models.UserResponse{ID: user.ID, Email: user.Email},
		})
	}
}

func Login(pool *pgxpool.Pool, cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("ERROR: Failed to decode login request body: %v", err)
			respondError(w, http.StatusBadRequest, "Invalid request")
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email == "" {
			respondError(w, http.StatusBadRequest, "Email is required")
			return
		}
		if req.Password == "" {
			respondError(w, http.StatusBadRequest, "Password is required")
			return
		}

		user, err := db.GetUserByEmail(r.Context(), pool, email)
		if err != nil {
			if errors.Is(err, db.ErrUserNotFound) {
				log.Printf("ERROR: Login attempt for unknown email: %s", email)
				respondError(w, http.StatusUnauthorized, "Invalid email or password")
				return
			}
			log.Printf("ERROR: Failed to look up user during login - Email: %s: %v", email, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
			log.Printf("ERROR: Invalid password attempt for %s from IP %s", email, r.RemoteAddr)
			respondError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}

		token, err := signToken(user.ID.String(), cfg.JWTSecret)
		if err != nil {
			log.Printf("ERROR: Failed to generate JWT token for user %s: %v", user.ID, err)
			respondError(w, http.StatusInternalServerError, "Internal server error")
			return
		}

		log.Printf("INFO: Successful login - User: %s, ID: %s", user.Email, user.ID)
		respondJSON(w, http.StatusOK, models.AuthResponse{
			Token: token,
			User:  models.UserResponse{ID: user.ID, Email: user.Email},
		})
	}
}
