package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/pkg/jwt"
	"github.com/omnihub/omnihub-api/internal/pkg/password"
)

// Service handles authentication business logic
type Service struct {
	accounts   account.Repository
	jwtService *jwt.Service
	redis      *redis.Client // nil if Redis disabled
}

// NewService creates auth service
func NewService(accounts account.Repository, jwtService *jwt.Service, redis *redis.Client) *Service {
	return &Service{
		accounts:   accounts,
		jwtService: jwtService,
		redis:      redis,
	}
}

// Register creates a new account. New accounts start with zero credits and
// get topped up by an admin.
func (s *Service) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	// 1. Check if email exists
	existing, _ := s.accounts.GetByEmail(ctx, req.Email)
	if existing != nil {
		return nil, ErrEmailAlreadyExists
	}

	// 2. Hash password
	hash, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	// 3. Create account
	a := &account.Account{
		ID:            uuid.New(),
		Email:         req.Email,
		Name:          req.Name,
		PasswordHash:  hash,
		Role:          account.RoleUser,
		CreditBalance: 0,
		IsActive:      true,
	}

	if err := s.accounts.Create(ctx, a); err != nil {
		if err == account.ErrEmailTaken {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	// 4. Generate tokens
	return s.generateTokens(ctx, a)
}

// Login authenticates an account
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	req.Email = normalizeEmail(req.Email)

	// 1. Find account
	a, err := s.accounts.GetByEmail(ctx, req.Email)
	if err != nil || a == nil {
		return nil, ErrInvalidCredentials
	}

	// 2. Verify password
	if !password.Verify(req.Password, a.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	// Suspended accounts cannot log in
	if !a.IsActive {
		return nil, ErrAccountSuspended
	}

	// 3. Generate tokens
	return s.generateTokens(ctx, a)
}

// Refresh rotates the refresh token and issues a new token pair
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	if refreshToken == "" {
		return nil, ErrInvalidRefreshToken
	}

	// 1. Validate refresh JWT signature and expiry
	if _, err := s.jwtService.ValidateRefreshToken(refreshToken); err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// 2. Check the stored hash (we store hash(refresh), never the raw token)
	refreshHash := jwt.HashRefreshToken(refreshToken)
	accountID, err := s.getRefreshToken(ctx, refreshHash)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	// 3. Get account
	a, err := s.accounts.GetByID(ctx, accountID)
	if err != nil || a == nil {
		return nil, ErrAccountNotFound
	}
	if !a.IsActive {
		return nil, ErrAccountSuspended
	}

	// 4. Delete old refresh token (token rotation)
	_ = s.deleteRefreshToken(ctx, refreshHash)

	// 5. Generate new tokens
	return s.generateTokens(ctx, a)
}

// Logout invalidates refresh token
func (s *Service) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil // Nothing to logout
	}

	refreshHash := jwt.HashRefreshToken(refreshToken)
	return s.deleteRefreshToken(ctx, refreshHash)
}

// GetCurrentAccount returns the account behind a token
func (s *Service) GetCurrentAccount(ctx context.Context, accountID uuid.UUID) (*AccountResponse, error) {
	a, err := s.accounts.GetByID(ctx, accountID)
	if err != nil || a == nil {
		return nil, ErrAccountNotFound
	}

	resp := NewAccountResponse(a.ID, a.Email, a.Name, string(a.Role), a.CreditBalance, a.IsActive, a.CreatedAt)
	return &resp, nil
}

// generateTokens creates access and refresh tokens
func (s *Service) generateTokens(ctx context.Context, a *account.Account) (*AuthResponse, error) {
	accessToken, err := s.jwtService.GenerateAccessToken(a.ID, string(a.Role))
	if err != nil {
		return nil, err
	}

	refreshToken, _, _, err := s.jwtService.GenerateRefreshToken(a.ID)
	if err != nil {
		return nil, err
	}

	// Store hash(refresh) in Redis
	refreshHash := jwt.HashRefreshToken(refreshToken)
	if err := s.storeRefreshToken(ctx, refreshHash, a.ID); err != nil {
		return nil, err
	}

	return &AuthResponse{
		Account: NewAccountResponse(a.ID, a.Email, a.Name, string(a.Role), a.CreditBalance, a.IsActive, a.CreatedAt),
		Tokens: TokensResponse{
			AccessToken:  accessToken,
			RefreshToken: refreshToken, // return raw refresh to client
			ExpiresIn:    int(s.jwtService.GetAccessTTL().Seconds()),
		},
	}, nil
}

// Redis helpers (handle nil redis gracefully)
func (s *Service) storeRefreshToken(ctx context.Context, tokenHash string, accountID uuid.UUID) error {
	if s.redis == nil {
		return nil // Skip if Redis not configured
	}
	return s.redis.Set(ctx, "refresh:"+tokenHash, accountID.String(), s.jwtService.GetRefreshTTL()).Err()
}

func (s *Service) getRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	if s.redis == nil {
		// Without Redis, refresh tokens don't work
		return uuid.Nil, ErrInvalidRefreshToken
	}
	val, err := s.redis.Get(ctx, "refresh:"+tokenHash).Result()
	if err != nil {
		return uuid.Nil, ErrInvalidRefreshToken
	}
	return uuid.Parse(val)
}

func (s *Service) deleteRefreshToken(ctx context.Context, tokenHash string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, "refresh:"+tokenHash).Err()
}
