package postgres

import (
	"context"
	"errors"
	"fmt"

	"tripLogger/domain"

	"gorm.io/gorm"
)

type TripRepository struct {
	DB *gorm.DB
}

func NewTripRepository(db *gorm.DB) *TripRepository {
	return &TripRepository{
		DB: db,
	}
}

func (r *TripRepository) Create(ctx context.Context, trip *domain.Trip) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(trip).Error; err != nil {
		return fmt.Errorf("failed to create trip: %w", err)
	}

	return nil
}

// FindByUserID returns the user's trips, newest start date first.
func (r *TripRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.Trip, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var trips []domain.Trip
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC").
		Order("id DESC").
		Find(&trips).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find trips: %w", err)
	}

	return trips, nil
}

// FindByID only returns trips owned by userID.
func (r *TripRepository) FindByID(ctx context.Context, userID, id uint) (domain.Trip, error) {
	if err := ctx.Err(); err != nil {
		return domain.Trip{}, fmt.Errorf("context error: %w", err)
	}

	var trip domain.Trip
	err := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&trip).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Trip{}, domain.ErrTripNotFound
		}
		return domain.Trip{}, fmt.Errorf("failed to find trip: %w", err)
	}

	return trip, nil
}
