package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/akosua/remitgh/internal/domain"
)

// TransferUseCase owns the in-progress transfer draft for each user and
// the submission of completed drafts to the payment gateway.
//
// Drafts live in memory only: they are per-session state and are not
// expected to survive a restart. Each draft carries its own lock so a
// concurrent Reset can never race a pending submission.
type TransferUseCase struct {
	mu     sync.Mutex
	drafts map[string]*draftEntry

	rates     *RateUseCase
	userRepo  UserRepository
	txManager TransactionManager
	txnRepo   TransactionRepository
	outbox    OutboxRepository
	gateway   PaymentGateway
	idGen     IDGenerator
	feePolicy domain.FeePolicy
}

type draftEntry struct {
	mu    sync.Mutex
	draft *domain.TransferDraft
}

// NewTransferUseCase creates a new TransferUseCase. A nil feePolicy means
// no fee.
func NewTransferUseCase(
	rates *RateUseCase,
	userRepo UserRepository,
	txManager TransactionManager,
	txnRepo TransactionRepository,
	outbox OutboxRepository,
	gateway PaymentGateway,
	idGen IDGenerator,
	feePolicy domain.FeePolicy,
) *TransferUseCase {
	if feePolicy == nil {
		feePolicy = domain.ZeroFeePolicy
	}

	return &TransferUseCase{
		drafts:    make(map[string]*draftEntry),
		rates:     rates,
		userRepo:  userRepo,
		txManager: txManager,
		txnRepo:   txnRepo,
		outbox:    outbox,
		gateway:   gateway,
		idGen:     idGen,
		feePolicy: feePolicy,
	}
}

func (uc *TransferUseCase) entry(userID string) *draftEntry {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	e, ok := uc.drafts[userID]
	if !ok {
		e = &draftEntry{draft: domain.NewTransferDraft(uc.feePolicy)}
		uc.drafts[userID] = e
	}

	return e
}

// QuoteInput represents an amount-setting request for a draft.
type QuoteInput struct {
	UserID string
	Amount decimal.Decimal
	// Side is "send" or "receive": which side of the corridor Amount is on.
	Side string
}

// SetAmount prices the draft from either side of the corridor. The rate is
// looked up for the user's home currency; an unknown currency fails closed
// before the draft is touched.
func (uc *TransferUseCase) SetAmount(ctx context.Context, input QuoteInput) (*domain.TransferDraft, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	rate, err := uc.rates.GetRate(ctx, user.Country.Currency)
	if err != nil {
		return nil, err
	}

	e := uc.entry(input.UserID)
	e.mu.Lock()
	defer e.mu.Unlock()

	switch input.Side {
	case "receive":
		err = e.draft.SetReceiveAmount(input.Amount, rate.Rate)
	default:
		err = e.draft.SetSendAmount(input.Amount, rate.Rate)
	}
	if err != nil {
		return nil, err
	}

	e.draft.SendCurrency = user.Country.Currency

	return uc.snapshot(e), nil
}

// SetRecipient attaches a recipient to the draft.
func (uc *TransferUseCase) SetRecipient(ctx context.Context, userID string, recipient *domain.Recipient) (*domain.TransferDraft, error) {
	e := uc.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.draft.SetRecipient(recipient); err != nil {
		return nil, err
	}

	return uc.snapshot(e), nil
}

// SetPaymentMethod records the funding instrument on the draft.
func (uc *TransferUseCase) SetPaymentMethod(ctx context.Context, userID string, method domain.PaymentMethod) (*domain.TransferDraft, error) {
	e := uc.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.draft.SetPaymentMethod(method); err != nil {
		return nil, err
	}

	return uc.snapshot(e), nil
}

// GetDraft returns a copy of the user's current draft.
func (uc *TransferUseCase) GetDraft(ctx context.Context, userID string) *domain.TransferDraft {
	e := uc.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	return uc.snapshot(e)
}

// ResetDraft discards the in-progress transfer. It blocks while a
// submission on the same draft is in flight.
func (uc *TransferUseCase) ResetDraft(ctx context.Context, userID string) {
	e := uc.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft.Reset()
}

// SubmitInput represents a submission request.
type SubmitInput struct {
	UserID         string
	IdempotencyKey string
}

// Submit validates the draft's preconditions, charges the sender through
// the payment gateway and records the transaction. The gateway call is
// bounded by GatewayTimeout and carries an idempotency key so provider
// side retries cannot double-charge.
func (uc *TransferUseCase) Submit(ctx context.Context, input SubmitInput) (*domain.Transaction, error) {
	user, err := uc.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if !user.CanSend() {
		return nil, domain.ErrKYCNotVerified
	}

	e := uc.entry(input.UserID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.draft.ReadyToSubmit(); err != nil {
		return nil, err
	}

	if err := domain.ValidateSendAmount(e.draft.SendAmount); err != nil {
		return nil, err
	}

	key := input.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	gatewayCtx, cancel := context.WithTimeout(ctx, GatewayTimeout)
	defer cancel()

	result, err := uc.gateway.Initiate(gatewayCtx, PaymentRequest{
		IdempotencyKey: key,
		UserID:         user.ID,
		Amount:         e.draft.Total().String(),
		Currency:       e.draft.SendCurrency,
		PaymentMethod:  e.draft.PaymentMethod,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, domain.ErrPaymentTimeout
		}
		return nil, err
	}

	if result.Outcome == PaymentDeclined {
		return nil, domain.ErrPaymentDeclined
	}

	txn, err := uc.recordTransaction(ctx, user, e.draft, result.Reference)
	if err != nil {
		return nil, err
	}

	e.draft.Reset()

	return txn, nil
}

// recordTransaction persists the accepted transfer and its outbox event in
// one database transaction.
func (uc *TransferUseCase) recordTransaction(ctx context.Context, user *domain.User, draft *domain.TransferDraft, gatewayRef string) (*domain.Transaction, error) {
	now := time.Now().UTC()

	txn := &domain.Transaction{
		ID:              uc.idGen.Generate(),
		UserID:          user.ID,
		RecipientName:   draft.Recipient.Name,
		RecipientPhone:  draft.Recipient.Phone,
		Method:          draft.Method(),
		PaymentMethod:   draft.PaymentMethod,
		SendAmount:      draft.SendAmount,
		SendCurrency:    draft.SendCurrency,
		ReceiveAmount:   draft.ReceiveAmount,
		ReceiveCurrency: domain.ReceivingCountry.Currency,
		ExchangeRate:    draft.ExchangeRate,
		Fee:             draft.Fee,
		Status:          domain.StatusProcessing,
		GatewayRef:      gatewayRef,
		CreatedAt:       now,
	}

	if err := txn.Validate(); err != nil {
		return nil, err
	}

	tx, err := uc.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	if err := uc.txnRepo.Create(ctx, tx, txn); err != nil {
		return nil, err
	}

	event := &domain.OutboxEvent{
		ID:            uc.idGen.Generate(),
		AggregateID:   txn.ID,
		AggregateType: domain.AggregateTypeTransaction,
		EventType:     domain.EventTypeTransferSubmitted,
		Payload: map[string]any{
			"transaction_id":   txn.ID,
			"user_id":          txn.UserID,
			"send_amount":      txn.SendAmount.String(),
			"send_currency":    txn.SendCurrency,
			"receive_amount":   txn.ReceiveAmount.String(),
			"receive_currency": txn.ReceiveCurrency,
			"method":           string(txn.Method),
		},
		CreatedAt: now,
	}

	if err := uc.outbox.Create(ctx, tx, event); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return txn, nil
}

// GetTransaction retrieves a transaction by ID, scoped to its owner.
func (uc *TransferUseCase) GetTransaction(ctx context.Context, userID, id string) (*domain.Transaction, error) {
	txn, err := uc.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if txn.UserID != userID {
		return nil, domain.ErrTransactionNotFound
	}

	return txn, nil
}

// ListTransactionsInput represents input for listing a user's transfers.
type ListTransactionsInput struct {
	UserID string
	Limit  int
	Offset int
}

// ListTransactions lists a user's submitted transfers.
func (uc *TransferUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.Transaction, error) {
	limit, offset := domain.ValidatePagination(input.Limit, input.Offset)

	return uc.txnRepo.ListByUser(ctx, input.UserID, limit, offset)
}

// snapshot copies the draft so callers cannot mutate shared state outside
// the entry lock.
func (uc *TransferUseCase) snapshot(e *draftEntry) *domain.TransferDraft {
	copied := *e.draft
	return &copied
}
