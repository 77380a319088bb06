package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/pkg/password"
)

type seedRepo struct {
	byEmail map[string]*account.Account
	creates int
}

func newSeedRepo() *seedRepo {
	return &seedRepo{byEmail: map[string]*account.Account{}}
}

func (r *seedRepo) Create(ctx context.Context, a *account.Account) error {
	if _, ok := r.byEmail[a.Email]; ok {
		return account.ErrEmailTaken
	}
	stored := *a
	r.byEmail[a.Email] = &stored
	r.creates++
	return nil
}

func (r *seedRepo) GetByEmail(ctx context.Context, email string) (*account.Account, error) {
	a, ok := r.byEmail[email]
	if !ok {
		return nil, account.ErrNotFound
	}
	return a, nil
}

func (r *seedRepo) GetByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return nil, account.ErrNotFound
}
func (r *seedRepo) List(ctx context.Context, limit, offset int) ([]account.Account, error) {
	return nil, nil
}
func (r *seedRepo) Count(ctx context.Context) (int, error) { return len(r.byEmail), nil }
func (r *seedRepo) GetBalance(ctx context.Context, id uuid.UUID) (int, error) {
	return 0, account.ErrNotFound
}
func (r *seedRepo) IsActive(ctx context.Context, id uuid.UUID) (bool, error) {
	return false, account.ErrNotFound
}
func (r *seedRepo) AdjustBalance(ctx context.Context, id uuid.UUID, delta int) (int, error) {
	return 0, account.ErrNotFound
}
func (r *seedRepo) AdjustBalanceTx(ctx context.Context, tx *sqlx.Tx, id uuid.UUID, delta int) (int, error) {
	return 0, account.ErrNotFound
}
func (r *seedRepo) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	return account.ErrNotFound
}

func TestSeedAdminCreatesAccount(t *testing.T) {
	repo := newSeedRepo()

	if err := SeedAdmin(context.Background(), repo, "admin@example.com", "bootstrap-secret", "Admin"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	a, err := repo.GetByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if a.Role != account.RoleAdmin {
		t.Fatalf("expected admin role, got %s", a.Role)
	}
	if a.CreditBalance != 0 {
		t.Fatalf("admin should start with zero credits, got %d", a.CreditBalance)
	}
	if !a.IsActive {
		t.Fatal("seeded admin should be active")
	}
	if !password.Verify("bootstrap-secret", a.PasswordHash) {
		t.Fatal("seeded password hash does not verify")
	}
}

func TestSeedAdminIdempotent(t *testing.T) {
	repo := newSeedRepo()

	for i := 0; i < 3; i++ {
		if err := SeedAdmin(context.Background(), repo, "admin@example.com", "bootstrap-secret", "Admin"); err != nil {
			t.Fatalf("seed run %d failed: %v", i, err)
		}
	}

	if repo.creates != 1 {
		t.Fatalf("expected exactly one create, got %d", repo.creates)
	}
}

func TestSeedExtraAdmins(t *testing.T) {
	repo := newSeedRepo()

	spec := "admin1@example.com:secret1:Admin One, admin2@example.com:secret2:Admin Two, malformed-entry"
	if err := SeedExtraAdmins(context.Background(), repo, spec); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if repo.creates != 2 {
		t.Fatalf("expected 2 creates, got %d", repo.creates)
	}
	a, err := repo.GetByEmail(context.Background(), "admin2@example.com")
	if err != nil {
		t.Fatalf("second admin not created: %v", err)
	}
	if a.Name != "Admin Two" || a.Role != account.RoleAdmin {
		t.Fatalf("unexpected account %+v", a)
	}
}

func TestSeedAdminSkipsWhenUnconfigured(t *testing.T) {
	repo := newSeedRepo()

	if err := SeedAdmin(context.Background(), repo, "", "", ""); err != nil {
		t.Fatalf("unconfigured seed must not fail: %v", err)
	}
	if repo.creates != 0 {
		t.Fatalf("expected no account created, got %d", repo.creates)
	}
}
