package main

import (
	"context"
	stdErrors "errors"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/emberoak/atelier-backend/internal/users"
	"github.com/emberoak/atelier-backend/pkg/config"
	"github.com/emberoak/atelier-backend/pkg/db"
	"github.com/emberoak/atelier-backend/pkg/db/models"
	"github.com/emberoak/atelier-backend/pkg/enums"
	"github.com/emberoak/atelier-backend/pkg/logger"
	"github.com/emberoak/atelier-backend/pkg/security"
)

// Creates or refreshes the admin console login. Intended for first-time setup
// and password resets; safe to re-run.
func main() {
	ctx := context.Background()
	logg := logger.New(logger.Options{ServiceName: "seed-admin"})

	_ = godotenv.Load()

	email := flag.String("email", "", "admin email")
	name := flag.String("name", "Admin", "display name")
	password := flag.String("password", "", "admin password (or set ATELIER_SEED_ADMIN_PASSWORD)")
	flag.Parse()

	if *password == "" {
		*password = os.Getenv("ATELIER_SEED_ADMIN_PASSWORD")
	}
	if *email == "" || *password == "" {
		fmt.Fprintln(os.Stderr, "both -email and a password are required")
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(ctx, "failed to load config", err)
		os.Exit(1)
	}

	dbClient, err := db.New(ctx, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer dbClient.Close()

	hash, err := security.HashPassword(*password, cfg.Password)
	if err != nil {
		logg.Error(ctx, "failed to hash password", err)
		os.Exit(1)
	}

	repo := users.NewRepository(dbClient.DB())

	existing, err := repo.FindByEmail(ctx, *email)
	switch {
	case err == nil:
		if err := repo.UpdatePasswordHash(ctx, existing.ID, hash); err != nil {
			logg.Error(ctx, "failed to update admin password", err)
			os.Exit(1)
		}
		fmt.Println("updated password for", existing.Email)

	case stdErrors.Is(err, gorm.ErrRecordNotFound):
		user := &models.User{
			Name:         *name,
			Email:        *email,
			PasswordHash: hash,
			Role:         enums.UserRoleAdmin,
		}
		if err := repo.Create(ctx, user); err != nil {
			logg.Error(ctx, "failed to create admin user", err)
			os.Exit(1)
		}
		fmt.Println("created admin", user.Email)

	default:
		logg.Error(ctx, "failed to look up admin user", err)
		os.Exit(1)
	}
}
