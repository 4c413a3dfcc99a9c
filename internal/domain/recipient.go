package domain

import (
	"time"
)

// TransferMethod is the rail a recipient is paid through.
type TransferMethod string

const (
	MethodMobileMoney TransferMethod = "mobile_money"
	MethodBank        TransferMethod = "bank"
)

// IsValid checks if the transfer method is a supported rail.
func (m TransferMethod) IsValid() bool {
	return m == MethodMobileMoney || m == MethodBank
}

// MobileMoneyDetails identifies a mobile wallet payout target.
type MobileMoneyDetails struct {
	Provider string
	Number   string
}

// BankDetails identifies a bank account payout target.
type BankDetails struct {
	AccountNumber string
	BankName      string
	AccountName   string
}

// Recipient is a payee in Ghana. Exactly one of MobileMoney or Bank is
// populated, matching Method.
type Recipient struct {
	ID          string
	UserID      string
	Name        string
	Phone       string
	Method      TransferMethod
	MobileMoney *MobileMoneyDetails
	Bank        *BankDetails
	CreatedAt   time.Time
}

// NewMobileMoneyRecipient builds a mobile money recipient. The local phone
// number is validated and stored in E.164 form with the Ghana prefix.
func NewMobileMoneyRecipient(id, userID, name, localPhone, provider string) (*Recipient, error) {
	phone, err := NormalizeGhanaPhone(localPhone)
	if err != nil {
		return nil, err
	}

	r := &Recipient{
		ID:     id,
		UserID: userID,
		Name:   name,
		Phone:  phone,
		Method: MethodMobileMoney,
		MobileMoney: &MobileMoneyDetails{
			Provider: provider,
			Number:   phone,
		},
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// NewBankRecipient builds a bank recipient. The account name defaults to
// the recipient name.
func NewBankRecipient(id, userID, name, localPhone, accountNumber, bankName string) (*Recipient, error) {
	phone, err := NormalizeGhanaPhone(localPhone)
	if err != nil {
		return nil, err
	}

	r := &Recipient{
		ID:     id,
		UserID: userID,
		Name:   name,
		Phone:  phone,
		Method: MethodBank,
		Bank: &BankDetails{
			AccountNumber: accountNumber,
			BankName:      bankName,
			AccountName:   name,
		},
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate enforces that exactly one payout variant matches the method and
// that the variant's fields are complete.
func (r *Recipient) Validate() error {
	if r.Name == "" {
		return ErrInvalidRecipient
	}

	if !r.Method.IsValid() {
		return ErrInvalidTransferMethod
	}

	switch r.Method {
	case MethodMobileMoney:
		if r.MobileMoney == nil || r.Bank != nil {
			return ErrInvalidRecipient
		}
		if !IsMobileMoneyProvider(r.MobileMoney.Provider) || r.MobileMoney.Number == "" {
			return ErrInvalidRecipient
		}
	case MethodBank:
		if r.Bank == nil || r.MobileMoney != nil {
			return ErrInvalidRecipient
		}
		if r.Bank.AccountNumber == "" || !IsGhanaBank(r.Bank.BankName) {
			return ErrInvalidRecipient
		}
	}

	return nil
}
