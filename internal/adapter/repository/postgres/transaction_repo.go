package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akosua/remitgh/internal/domain"
	"github.com/akosua/remitgh/internal/usecase"
)

// TransactionRepository implements transaction persistence
type TransactionRepository struct {
	pool    *pgxpool.Pool
	retrier *Retrier
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool, retrier: NewRetrier()}
}

// Create inserts a transaction within a database transaction. The outbox
// event for the same submission rides in the same tx.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, txn *domain.Transaction) error {
	pgxTx := tx.(*Tx).PgxTx()

	query := `
		INSERT INTO transactions (id, user_id, recipient_name, recipient_phone, method, payment_method,
			send_amount, send_currency, receive_amount, receive_currency, exchange_rate, fee,
			status, gateway_ref, created_at, completed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`

	_, err := pgxTx.Exec(ctx, query,
		txn.ID,
		txn.UserID,
		txn.RecipientName,
		txn.RecipientPhone,
		txn.Method,
		txn.PaymentMethod,
		txn.SendAmount,
		txn.SendCurrency,
		txn.ReceiveAmount,
		txn.ReceiveCurrency,
		txn.ExchangeRate,
		txn.Fee,
		txn.Status,
		nullableString(txn.GatewayRef),
		txn.CreatedAt,
		txn.CompletedAt,
	)

	return err
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	query := `
		SELECT id, user_id, recipient_name, recipient_phone, method, payment_method,
			send_amount, send_currency, receive_amount, receive_currency, exchange_rate, fee,
			status, gateway_ref, created_at, completed_at
		FROM transactions
		WHERE id = $1
	`

	txn, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}

	return txn, err
}

// ListByUser retrieves a user's transaction history, newest first
func (r *TransactionRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Transaction, error) {
	query := `
		SELECT id, user_id, recipient_name, recipient_phone, method, payment_method,
			send_amount, send_currency, receive_amount, receive_currency, exchange_rate, fee,
			status, gateway_ref, created_at, completed_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []*domain.Transaction
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}

	return transactions, rows.Err()
}

// UpdateStatus moves a transaction through its lifecycle
func (r *TransactionRepository) UpdateStatus(ctx context.Context, id string, status domain.TransactionStatus, completedAt *time.Time) error {
	query := `
		UPDATE transactions
		SET status = $2, completed_at = $3
		WHERE id = $1
	`

	return r.retrier.Retry(ctx, func() error {
		tag, err := r.pool.Exec(ctx, query, id, status, completedAt)
		if err != nil {
			return err
		}

		if tag.RowsAffected() == 0 {
			return domain.ErrTransactionNotFound
		}

		return nil
	})
}

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var txn domain.Transaction
	var gatewayRef *string

	err := row.Scan(
		&txn.ID,
		&txn.UserID,
		&txn.RecipientName,
		&txn.RecipientPhone,
		&txn.Method,
		&txn.PaymentMethod,
		&txn.SendAmount,
		&txn.SendCurrency,
		&txn.ReceiveAmount,
		&txn.ReceiveCurrency,
		&txn.ExchangeRate,
		&txn.Fee,
		&txn.Status,
		&gatewayRef,
		&txn.CreatedAt,
		&txn.CompletedAt,
	)
	if err != nil {
		return nil, err
	}

	txn.GatewayRef = derefString(gatewayRef)

	return &txn, nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
