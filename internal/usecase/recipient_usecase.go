package usecase

import (
	"context"
	"time"

	"github.com/akosua/remitgh/internal/domain"
)

// RecipientUseCase manages a user's saved payees.
type RecipientUseCase struct {
	recipientRepo RecipientRepository
	idGen         IDGenerator
}

// NewRecipientUseCase creates a new RecipientUseCase.
func NewRecipientUseCase(recipientRepo RecipientRepository, idGen IDGenerator) *RecipientUseCase {
	return &RecipientUseCase{
		recipientRepo: recipientRepo,
		idGen:         idGen,
	}
}

// CreateRecipientInput represents input for saving a recipient.
type CreateRecipientInput struct {
	UserID        string
	Name          string
	Phone         string
	Method        domain.TransferMethod
	Provider      string
	AccountNumber string
	BankName      string
}

// CreateRecipient validates and saves a payee.
func (uc *RecipientUseCase) CreateRecipient(ctx context.Context, input CreateRecipientInput) (*domain.Recipient, error) {
	if err := domain.ValidateName(input.Name); err != nil {
		return nil, err
	}

	var (
		recipient *domain.Recipient
		err       error
	)

	switch input.Method {
	case domain.MethodMobileMoney:
		recipient, err = domain.NewMobileMoneyRecipient(uc.idGen.Generate(), input.UserID, input.Name, input.Phone, input.Provider)
	case domain.MethodBank:
		recipient, err = domain.NewBankRecipient(uc.idGen.Generate(), input.UserID, input.Name, input.Phone, input.AccountNumber, input.BankName)
	default:
		return nil, domain.ErrInvalidTransferMethod
	}
	if err != nil {
		return nil, err
	}

	recipient.CreatedAt = time.Now().UTC()

	if err := uc.recipientRepo.Create(ctx, recipient); err != nil {
		return nil, err
	}

	return recipient, nil
}

// GetRecipient retrieves a saved recipient, scoped to its owner.
func (uc *RecipientUseCase) GetRecipient(ctx context.Context, userID, id string) (*domain.Recipient, error) {
	recipient, err := uc.recipientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if recipient.UserID != userID {
		return nil, domain.ErrRecipientNotFound
	}

	return recipient, nil
}

// ListRecipients lists a user's saved payees.
func (uc *RecipientUseCase) ListRecipients(ctx context.Context, userID string, limit, offset int) ([]*domain.Recipient, error) {
	limit, offset = domain.ValidatePagination(limit, offset)

	return uc.recipientRepo.ListByUser(ctx, userID, limit, offset)
}

// DeleteRecipient removes a saved payee, scoped to its owner.
func (uc *RecipientUseCase) DeleteRecipient(ctx context.Context, userID, id string) error {
	recipient, err := uc.recipientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if recipient.UserID != userID {
		return domain.ErrRecipientNotFound
	}

	return uc.recipientRepo.Delete(ctx, id)
}
