package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/unand-tendik/tendik-backend-go/internal/config"
	"github.com/unand-tendik/tendik-backend-go/internal/domain/user"
	"github.com/unand-tendik/tendik-backend-go/internal/pkg/database"
	"github.com/unand-tendik/tendik-backend-go/internal/repository/postgresql"
	"golang.org/x/crypto/bcrypt"
)

// Seeds the ADMIN role and one administrator account. Safe to run repeatedly.
func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := db.Migrate(ctx); err != nil {
		log.Fatal("Error running migrations: ", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Error hashing admin password: ", err)
	}

	admin, err := postgresql.NewUserRepository(db).UpsertByEmail(ctx, user.User{
		Name:         cfg.Seed.AdminName,
		Email:        strings.ToLower(cfg.Seed.AdminEmail),
		PasswordHash: string(hash),
		Role:         user.RoleAdmin,
	})
	if err != nil {
		log.Fatal("Error seeding admin: ", err)
	}

	slog.Info("Admin user seeded", "id", admin.ID, "email", admin.Email)
}
