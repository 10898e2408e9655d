package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// AdminCredentials is the configured administrative login. The password is
// stored as a bcrypt hash, never in clear.
type AdminCredentials struct {
	Username     string
	PasswordHash string
}

// AuthService implements landlord signup/login and the admin login.
type AuthService struct {
	accounts   ports.AccountRepository
	admin      AdminCredentials
	signingKey string
	tokenTTL   time.Duration
}

func NewAuthService(accounts ports.AccountRepository, admin AdminCredentials, signingKey string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{accounts: accounts, admin: admin, signingKey: signingKey, tokenTTL: tokenTTL}
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Account, error) {
	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		return nil, fmt.Errorf("%w: name, email, phone and password are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
		PasswordHash: string(hash),
		Active:       true,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}
	created.PasswordHash = ""
	return created, nil
}

// Login authenticates a landlord. Banned accounts are refused with
// domain.ErrAccountBanned so the transport layer can point the user to
// the appeal flow.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Account, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}
	if account.Banned {
		return "", nil, domain.ErrAccountBanned
	}

	token, err := s.generateToken(account.ID, domain.RoleLandlord, account.Email)
	if err != nil {
		return "", nil, err
	}

	account.PasswordHash = ""
	return token, account, nil
}

// AdminLogin checks the supplied credentials against the configured admin
// username and bcrypt hash.
func (s *AuthService) AdminLogin(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" || username != s.admin.Username {
		return "", domain.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.generateToken("", domain.RoleAdmin, username)
}

func (s *AuthService) generateToken(accountID, role, email string) (string, error) {
	claims := jwt.MapClaims{
		"account_id": accountID,
		"role":       role,
		"email":      email,
		"exp":        time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.signingKey))
}
