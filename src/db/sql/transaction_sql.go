package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"fintrack-server/src/finance"
	"fintrack-server/src/models"
)

var ErrTransactionNotFound = errors.New("transaction not found")

const transactionColumns = "id, user_id, type, amount, category, date, description, created_at, updated_at"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE/ILIKE metacharacters so user input matches
// as a literal substring, never as a pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// buildTransactionWhere renders the predicate descriptor into a
// parameterized WHERE clause. The owner clause is always first; the
// optional clauses follow in a fixed order so the statement text is stable
// for a given filter shape.
func buildTransactionWhere(filter finance.TransactionFilter) (string, []any) {
	clauses := []string{"user_id = $1"}
	args := []any{filter.UserID}

	if filter.Type != "" {
		args = append(args, filter.Type)
		clauses = append(clauses, fmt.Sprintf("type = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, escapeLike(filter.Category))
		clauses = append(clauses, fmt.Sprintf("category ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clauses = append(clauses, fmt.Sprintf("date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		clauses = append(clauses, fmt.Sprintf("date <= $%d", len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

func ListTransactions(ctx context.Context, pool *pgxpool.Pool, filter finance.TransactionFilter) ([]models.Transaction, error) {
	where, args := buildTransactionWhere(filter)
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE %s
		ORDER BY date DESC
	`, transactionColumns, where)

	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category, &tx.Date, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}

	return transactions, rows.Err()
}

func GetTransactionByID(ctx context.Context, pool *pgxpool.Pool, userID, id uuid.UUID) (*models.Transaction, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM transactions
		WHERE id = $1 AND user_id = $2
	`, transactionColumns)

	var tx models.Transaction
	err := pool.QueryRow(ctx, query, id, userID).Scan(
		&tx.ID, &tx.UserID, &tx.Type, &tx.Amount, &tx.Category, &tx.Date, &tx.Description, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &tx, nil
}

func CreateTransaction(ctx context.Context, pool *pgxpool.Pool, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (user_id, type, amount, category, date, description)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := pool.QueryRow(ctx, query, tx.UserID, tx.Type, tx.Amount, tx.Category, tx.Date, tx.Description).Scan(
		&tx.ID, &tx.CreatedAt, &tx.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

func UpdateTransaction(ctx context.Context, pool *pgxpool.Pool, tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET type = $1, amount = $2, category = $3, date = $4, description = $5, updated_at = NOW()
		WHERE id = $6 AND user_id = $7
		RETURNING updated_at
	`

	err := pool.QueryRow(ctx, query, tx.Type, tx.Amount, tx.Category, tx.Date, tx.Description, tx.ID, tx.UserID).Scan(&tx.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrTransactionNotFound
		}
		return fmt.Errorf("failed to update transaction: %w", err)
	}
	return nil
}

func DeleteTransaction(ctx context.Context, pool *pgxpool.Pool, userID, id uuid.UUID) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	tag, err := pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	// A missing row and a row owned by someone else are the same outcome.
	if tag.RowsAffected() == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
