package usecase

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/akosua/remitgh/internal/domain"
)

// UserUseCase handles onboarding: registration, OTP verification, KYC and
// login.
type UserUseCase struct {
	userRepo UserRepository
	cache    Cache
	idGen    IDGenerator
	tokens   TokenIssuer
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(userRepo UserRepository, cache Cache, idGen IDGenerator, tokens TokenIssuer) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		cache:    cache,
		idGen:    idGen,
		tokens:   tokens,
	}
}

// RegisterInput represents input for registering a sender.
type RegisterInput struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	Phone       string
	CountryCode string
}

// Register creates an unverified user and issues a one-time code. The code
// is returned so the SMS/email dispatch seam can deliver it; the user
// stays unverified until VerifyOTP succeeds.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, string, error) {
	if err := domain.ValidateEmail(input.Email); err != nil {
		return nil, "", err
	}

	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, "", err
	}

	if existing, err := uc.userRepo.GetByEmail(ctx, input.Email); err == nil && existing != nil {
		return nil, "", domain.ErrEmailTaken
	}

	country, ok := domain.SendingCountryByCode(input.CountryCode)
	if !ok {
		country = domain.SendingCountries[0]
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now().UTC()
	user := &domain.User{
		ID:           uc.idGen.Generate(),
		Email:        input.Email,
		PasswordHash: string(hash),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Phone:        input.Phone,
		Country:      country,
		Verified:     false,
		KYCStatus:    domain.KYCPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, "", err
	}

	otp := generateOTP()
	if err := uc.cache.Set(ctx, otpCacheKey(user.ID), otp, OTPTTL); err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""

	return user, otp, nil
}

// VerifyOTP checks the one-time code and marks the user verified.
func (uc *UserUseCase) VerifyOTP(ctx context.Context, userID, code string) (*domain.User, error) {
	stored, err := uc.cache.Get(ctx, otpCacheKey(userID))
	if err != nil || stored != code {
		return nil, domain.ErrInvalidOTP
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Verified = true
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	_ = uc.cache.Delete(ctx, otpCacheKey(userID))

	user.PasswordHash = ""

	return user, nil
}

// CompleteKYC records the identity submission and marks the user verified
// for sending. The document check itself is the provider's seam; an
// incomplete submission is rejected here.
func (uc *UserUseCase) CompleteKYC(ctx context.Context, userID string, submission domain.KYCSubmission) (*domain.User, error) {
	if err := submission.Validate(); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.KYCStatus = domain.KYCVerified
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return user, nil
}

// SelectCountry switches the user's sending corridor. The home currency
// follows the country, so in-flight drafts are repriced on the next quote.
func (uc *UserUseCase) SelectCountry(ctx context.Context, userID, countryCode string) (*domain.User, error) {
	country, ok := domain.SendingCountryByCode(countryCode)
	if !ok {
		return nil, domain.ErrUnsupportedCountry
	}

	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Country = country
	user.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return user, nil
}

// LoginInput represents login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and mints a session token.
func (uc *UserUseCase) Login(ctx context.Context, input LoginInput) (*domain.User, string, error) {
	user, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(user)
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""

	return user, token, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.PasswordHash = ""

	return user, nil
}

func otpCacheKey(userID string) string {
	return "otp:" + userID
}

// generateOTP draws a uniform 6-digit verification code. Draws above the
// largest multiple of 1e6 are rejected so no code is more likely than
// another.
func generateOTP() string {
	var buf [4]byte
	for {
		if _, err := rand.Read(buf[:]); err != nil {
			panic(err)
		}
		n := binary.BigEndian.Uint32(buf[:])
		if n < 4294000000 {
			return fmt.Sprintf("%06d", n%1000000)
		}
	}
}
