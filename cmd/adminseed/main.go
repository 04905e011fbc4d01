// Command adminseed creates the platform admin account once. Running it
// again is a no-op when the admin already exists.
package main

import (
	"fmt"
	"os"
	"time"

	"lawlink/config"
	"lawlink/database"
	accountRepo "lawlink/database/repository/account"
	"lawlink/models"
	"lawlink/services/auth"

	"github.com/google/uuid"
)

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.AdminPassword == "" {
		return fmt.Errorf("ADMIN_PASSWORD must be set")
	}

	client, err := database.Connect(cfg)
	if err != nil {
		return err
	}
	db := client.Database(cfg.DatabaseName)

	accounts, err := accountRepo.NewMongoAccountRepo(db)
	if err != nil {
		return err
	}

	existing, err := accounts.GetByEmail(cfg.AdminEmail)
	if err != nil {
		return err
	}
	if existing != nil && existing.Role == models.RoleAdmin {
		fmt.Println("Admin already exists.")
		return nil
	}

	creds, err := auth.NewCredentialService(cfg.JWTSecret, 72*time.Hour)
	if err != nil {
		return err
	}
	hashed, err := creds.HashPassword(cfg.AdminPassword)
	if err != nil {
		return err
	}

	admin := models.Account{
		ID:           uuid.New().String(),
		Email:        cfg.AdminEmail,
		PasswordHash: hashed,
		Role:         models.RoleAdmin,
	}
	if err := accounts.Create(&admin); err != nil {
		return err
	}

	fmt.Printf("Admin created successfully: %s\n", cfg.AdminEmail)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding admin: %v\n", err)
		os.Exit(1)
	}
}
