package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pim-intern/attendance-backend/internal/config"
	"github.com/pim-intern/attendance-backend/internal/domain/user"
	"github.com/pim-intern/attendance-backend/internal/fixtures"
	"github.com/pim-intern/attendance-backend/internal/pkg/civiltime"
	"github.com/pim-intern/attendance-backend/internal/pkg/database"
	"github.com/pim-intern/attendance-backend/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		slog.Error("Error connecting to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := seed(context.Background(), db, civiltime.NewResolver(cfg.Attendance.UTCOffsetHours, nil)); err != nil {
		slog.Error("Seed failed", "error", err)
		os.Exit(1)
	}
}

func seed(ctx context.Context, db *database.DB, clock *civiltime.Resolver) error {
	userRepo := postgresql.NewUserRepository(db)

	seeded, err := userRepo.ExistsByRole(ctx, user.RoleAdmin)
	if err != nil {
		return err
	}
	if seeded {
		slog.Info("Database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(fixtures.DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default password: %w", err)
	}

	users := fixtures.DemoUsers(string(hash), clock.Now())
	err = postgresql.WithTransaction(ctx, db, func(txCtx context.Context) error {
		for _, u := range users {
			if _, err := userRepo.Create(txCtx, u); err != nil {
				return fmt.Errorf("failed to create %s: %w", u.ID, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, u := range users {
		slog.Info("Seeded user", "id", u.ID, "email", u.Email, "role", string(u.Role))
	}
	return nil
}
