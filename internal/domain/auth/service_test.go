package auth

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/pkg/jwt"
	"github.com/omnihub/omnihub-api/internal/pkg/password"
)

type fakeAccountRepo struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]*account.Account
	byEmail map[string]*account.Account
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{
		byID:    map[uuid.UUID]*account.Account{},
		byEmail: map[string]*account.Account{},
	}
}

func (f *fakeAccountRepo) Create(ctx context.Context, a *account.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byEmail[a.Email]; ok {
		return account.ErrEmailTaken
	}
	stored := *a
	stored.CreatedAt = time.Now()
	f.byID[a.ID] = &stored
	f.byEmail[a.Email] = &stored
	return nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return nil, account.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byEmail[email]
	if !ok {
		return nil, account.ErrNotFound
	}
	return a, nil
}

func (f *fakeAccountRepo) List(ctx context.Context, limit, offset int) ([]account.Account, error) {
	return nil, nil
}
func (f *fakeAccountRepo) Count(ctx context.Context) (int, error) { return len(f.byID), nil }
func (f *fakeAccountRepo) GetBalance(ctx context.Context, id uuid.UUID) (int, error) {
	a, err := f.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return a.CreditBalance, nil
}
func (f *fakeAccountRepo) IsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	a, err := f.GetByID(ctx, id)
	if err != nil {
		return false, err
	}
	return a.IsActive, nil
}
func (f *fakeAccountRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return 0, account.ErrNotFound
	}
	if a.CreditBalance+delta < 0 {
		return 0, account.ErrInsufficientCredits
	}
	a.CreditBalance += delta
	return a.CreditBalance, nil
}
func (f *fakeAccountRepo) AdjustBalanceTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, delta int) (int, error) {
	return f.AdjustBalance(ctx, id, delta)
}
func (f *fakeAccountRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.byID[id]
	if !ok {
		return account.ErrNotFound
	}
	a.IsActive = active
	return nil
}

func newTestService(repo account.Repository) *Service {
	jwtSvc := jwt.NewService("test-secret", time.Minute, time.Hour)
	return NewService(repo, jwtSvc, nil)
}

/* ===== Test 1: registration creates an active user with zero credits ===== */

func TestRegisterStartsWithZeroCredits(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "User@Example.com",
		Name:     "Test User",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if resp.Account.CreditBalance != 0 {
		t.Fatalf("expected zero starting balance, got %d", resp.Account.CreditBalance)
	}
	if resp.Account.Role != "user" {
		t.Fatalf("expected role user, got %s", resp.Account.Role)
	}
	if resp.Account.Email != "user@example.com" {
		t.Fatalf("expected normalized email, got %s", resp.Account.Email)
	}
	if resp.Tokens.AccessToken == "" {
		t.Fatal("expected access token")
	}

	stored, err := repo.GetByEmail(context.Background(), "user@example.com")
	if err != nil {
		t.Fatalf("account not stored: %v", err)
	}
	if !stored.IsActive {
		t.Fatal("new account should be active")
	}
	if stored.PasswordHash == "supersecret" {
		t.Fatal("password stored in plain text")
	}
}

/* ===== Test 2: duplicate email is rejected ===== */

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	req := &RegisterRequest{Email: "dup@example.com", Name: "First", Password: "supersecret"}
	if _, err := svc.Register(context.Background(), req); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	_, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "DUP@example.com",
		Name:     "Second",
		Password: "othersecret",
	})
	if err != ErrEmailAlreadyExists {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

/* ===== Test 3: login verifies the password ===== */

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	if _, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "login@example.com",
		Name:     "Login User",
		Password: "rightpassword",
	}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "login@example.com",
		Password: "wrongpassword",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}

	if _, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "login@example.com",
		Password: "rightpassword",
	}); err != nil {
		t.Fatalf("valid login failed: %v", err)
	}
}

/* ===== Test 4: unknown email behaves like a bad password ===== */

func TestLoginUnknownEmail(t *testing.T) {
	svc := newTestService(newFakeAccountRepo())

	_, err := svc.Login(context.Background(), &LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever123",
	})
	if err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

/* ===== Test 5: suspended accounts cannot log in ===== */

func TestLoginSuspendedAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	hash, err := password.Hash("supersecret")
	if err != nil {
		t.Fatalf("hash failed: %v", err)
	}
	suspended := &account.Account{
		ID:           uuid.New(),
		Email:        "banned@example.com",
		Name:         "Banned",
		PasswordHash: hash,
		Role:         account.RoleUser,
		IsActive:     false,
	}
	if err := repo.Create(context.Background(), suspended); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	_, err = svc.Login(context.Background(), &LoginRequest{
		Email:    "banned@example.com",
		Password: "supersecret",
	})
	if err != ErrAccountSuspended {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
}

/* ===== Test 6: refresh without Redis is rejected ===== */

func TestRefreshWithoutRedis(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), &RegisterRequest{
		Email:    "refresh@example.com",
		Name:     "Refresh User",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Redis stores the refresh hash; without it rotation cannot be verified.
	_, err = svc.Refresh(context.Background(), resp.Tokens.RefreshToken)
	if err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

/* ===== Test 7: garbage refresh token is rejected ===== */

func TestRefreshInvalidToken(t *testing.T) {
	svc := newTestService(newFakeAccountRepo())

	if _, err := svc.Refresh(context.Background(), "not-a-jwt"); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
	if _, err := svc.Refresh(context.Background(), ""); err != ErrInvalidRefreshToken {
		t.Fatalf("expected ErrInvalidRefreshToken for empty token, got %v", err)
	}
}
