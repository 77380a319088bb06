package admin

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/omnihub/omnihub-api/internal/domain/account"
	"github.com/omnihub/omnihub-api/internal/pkg/password"
)

// SeedAdmin ensures the configured admin account exists. Idempotent: an
// existing account with the same email is left untouched.
func SeedAdmin(ctx context.Context, accounts account.Repository, email, plainPassword, name string) error {
	if email == "" || plainPassword == "" {
		log.Warn().Msg("admin seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	existing, _ := accounts.GetByEmail(ctx, email)
	if existing != nil {
		return nil
	}

	hash, err := password.Hash(plainPassword)
	if err != nil {
		return err
	}

	a := &account.Account{
		ID:            uuid.New(),
		Email:         email,
		Name:          name,
		PasswordHash:  hash,
		Role:          account.RoleAdmin,
		CreditBalance: 0,
		IsActive:      true,
	}

	if err := accounts.Create(ctx, a); err != nil {
		// Lost a race with a concurrent instance seeding the same admin.
		if err == account.ErrEmailTaken {
			return nil
		}
		return err
	}

	log.Info().Str("email", email).Msg("admin account seeded")
	return nil
}

// SeedExtraAdmins seeds additional admin accounts from a comma-separated list
// of "email:password:name" entries. Malformed entries are logged and skipped.
func SeedExtraAdmins(ctx context.Context, accounts account.Repository, spec string) error {
	if strings.TrimSpace(spec) == "" {
		return nil
	}

	for _, entry := range strings.Split(spec, ",") {
		parts := strings.SplitN(strings.TrimSpace(entry), ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" {
			log.Warn().Str("entry", entry).Msg("extra admin entry malformed, skipping")
			continue
		}
		if err := SeedAdmin(ctx, accounts, parts[0], parts[1], parts[2]); err != nil {
			return err
		}
	}
	return nil
}
