// Command promote bootstraps a bishop account by email address.
// An existing account is promoted to bishop; otherwise a new one is created.
// The password is read from the BISHOP_PASSWORD environment variable so it
// does not end up in shell history.
//
// Usage:
//
//	BISHOP_PASSWORD=... promote --email=bishop@example.com [--name="Bishop Smith"]
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres"
	"github.com/heartmarshall/shepherd-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/shepherd-backend/internal/app"
	"github.com/heartmarshall/shepherd-backend/internal/auth"
	"github.com/heartmarshall/shepherd-backend/internal/config"
	"github.com/heartmarshall/shepherd-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the bishop account")
	name := flag.String("name", "Bishop", "display name for a newly created account")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: BISHOP_PASSWORD=... promote --email=bishop@example.com [--name=...]")
		os.Exit(1)
	}
	password := os.Getenv("BISHOP_PASSWORD")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := user.New(pool)
	hasher := auth.NewHasher(cfg.Auth.BcryptCost)
	addr := strings.ToLower(strings.TrimSpace(*email))

	err = postgres.NewTxManager(pool).RunInTx(ctx, func(ctx context.Context) error {
		return promote(ctx, users, hasher, addr, *name, password)
	})
	if err != nil {
		logger.Error("promote failed", slog.String("email", addr), slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("bishop ready", slog.String("email", addr))
}

func promote(ctx context.Context, users *user.Repo, hasher *auth.Hasher, email, name, password string) error {
	var hash string
	if password != "" {
		if len(password) < 8 {
			return errors.New("BISHOP_PASSWORD must be at least 8 characters")
		}
		h, err := hasher.Hash(password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	existing, err := users.GetByEmail(ctx, email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		if hash == "" {
			return errors.New("BISHOP_PASSWORD is required to create a new account")
		}
		_, err := users.Create(ctx, &domain.User{
			Email:        email,
			Name:         name,
			Role:         domain.UserRoleBishop,
			PasswordHash: &hash,
		})
		return err
	case err != nil:
		return fmt.Errorf("get user: %w", err)
	}

	role := domain.UserRoleBishop
	noGroup := uuid.Nil
	if _, err := users.Update(ctx, existing.ID, domain.UserUpdateParams{Role: &role, GroupID: &noGroup}); err != nil {
		return fmt.Errorf("update role: %w", err)
	}
	if hash != "" {
		if err := users.SetPasswordHash(ctx, existing.ID, hash); err != nil {
			return fmt.Errorf("set password: %w", err)
		}
	}
	return nil
}
