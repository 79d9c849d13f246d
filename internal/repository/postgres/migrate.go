package postgres

import (
	"context"
	"errors"
	"fmt"

	"tripLogger/domain"
	"tripLogger/pkg/logger"
	"tripLogger/pkg/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	demoUsername = "demo"
	demoPassword = "demo123"
)

// Migrate creates or updates the users, trips and destinations tables.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(
		&domain.User{},
		&domain.Trip{},
		&domain.Destination{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}

	return nil
}

// SeedDestinations inserts the reference catalog, leaving existing names
// untouched.
func SeedDestinations(ctx context.Context, db *gorm.DB) error {
	rows := make([]domain.Destination, len(referenceDestinations))
	copy(rows, referenceDestinations)

	result := db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		CreateInBatches(rows, 50)
	if result.Error != nil {
		return fmt.Errorf("failed to seed destinations: %w", result.Error)
	}

	logger.Info("Seeded destinations", "inserted", result.RowsAffected, "catalog_size", len(rows))
	return nil
}

// SeedDemoUser creates the demo account when it does not exist yet.
func SeedDemoUser(ctx context.Context, users *UserRepository) error {
	_, err := users.FindByUsername(ctx, demoUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	hash, err := utils.HashPassword(demoPassword)
	if err != nil {
		return fmt.Errorf("failed to hash demo password: %w", err)
	}

	if err := users.Create(ctx, &domain.User{
		Username: demoUsername,
		Password: string(hash),
		Role:     "traveler",
	}); err != nil && !errors.Is(err, domain.ErrUsernameTaken) {
		return err
	}

	logger.Info("Seeded demo user", "username", demoUsername)
	return nil
}
