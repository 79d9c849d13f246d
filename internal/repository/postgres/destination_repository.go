package postgres

import (
	"context"
	"fmt"

	"tripLogger/domain"

	"gorm.io/gorm"
)

type DestinationRepository struct {
	DB *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) *DestinationRepository {
	return &DestinationRepository{
		DB: db,
	}
}

// FindAll returns the whole catalog in insertion order, which is the
// tie-break order used when ranking.
func (r *DestinationRepository) FindAll(ctx context.Context) ([]domain.Destination, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var destinations []domain.Destination
	if err := r.DB.WithContext(ctx).Order("id ASC").Find(&destinations).Error; err != nil {
		return nil, fmt.Errorf("failed to find destinations: %w", err)
	}

	return destinations, nil
}
