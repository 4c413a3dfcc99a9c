package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/akosua/remitgh/internal/domain"
)

// RecipientRepository implements recipient persistence
type RecipientRepository struct {
	pool *pgxpool.Pool
}

// NewRecipientRepository creates a new recipient repository
func NewRecipientRepository(pool *pgxpool.Pool) *RecipientRepository {
	return &RecipientRepository{pool: pool}
}

// Create inserts a new recipient
func (r *RecipientRepository) Create(ctx context.Context, recipient *domain.Recipient) error {
	query := `
		INSERT INTO recipients (id, user_id, name, phone, method, provider, account_number, bank_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	var provider, accountNumber, bankName *string
	switch recipient.Method {
	case domain.MethodMobileMoney:
		provider = &recipient.MobileMoney.Provider
	case domain.MethodBank:
		accountNumber = &recipient.Bank.AccountNumber
		bankName = &recipient.Bank.BankName
	}

	_, err := r.pool.Exec(ctx, query,
		recipient.ID,
		recipient.UserID,
		recipient.Name,
		recipient.Phone,
		recipient.Method,
		provider,
		accountNumber,
		bankName,
		recipient.CreatedAt,
	)

	return err
}

// GetByID retrieves a recipient by ID
func (r *RecipientRepository) GetByID(ctx context.Context, id string) (*domain.Recipient, error) {
	query := `
		SELECT id, user_id, name, phone, method, provider, account_number, bank_name, created_at
		FROM recipients
		WHERE id = $1
	`

	recipient, err := scanRecipient(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecipientNotFound
	}

	return recipient, err
}

// ListByUser retrieves a user's saved recipients with pagination
func (r *RecipientRepository) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*domain.Recipient, error) {
	query := `
		SELECT id, user_id, name, phone, method, provider, account_number, bank_name, created_at
		FROM recipients
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.pool.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipients []*domain.Recipient
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if err != nil {
			return nil, err
		}
		recipients = append(recipients, recipient)
	}

	return recipients, rows.Err()
}

// Delete deletes a recipient
func (r *RecipientRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recipients WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrRecipientNotFound
	}

	return nil
}

func scanRecipient(row pgx.Row) (*domain.Recipient, error) {
	var recipient domain.Recipient
	var provider, accountNumber, bankName *string

	err := row.Scan(
		&recipient.ID,
		&recipient.UserID,
		&recipient.Name,
		&recipient.Phone,
		&recipient.Method,
		&provider,
		&accountNumber,
		&bankName,
		&recipient.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	switch recipient.Method {
	case domain.MethodMobileMoney:
		recipient.MobileMoney = &domain.MobileMoneyDetails{
			Provider: derefString(provider),
			Number:   recipient.Phone,
		}
	case domain.MethodBank:
		recipient.Bank = &domain.BankDetails{
			AccountNumber: derefString(accountNumber),
			BankName:      derefString(bankName),
			AccountName:   recipient.Name,
		}
	}

	return &recipient, nil
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
