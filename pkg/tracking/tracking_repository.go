package tracking

import (
	"ecobytes-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	TrackingRepository interface {
		GetUserDonationRequests(ctx context.Context, userID string) ([]*entities.DonationRequest, error)
		GetUserCompostingRequests(ctx context.Context, userID string) ([]*entities.CompostingRequest, error)
	}

	trackingRepository struct {
		db *gorm.DB
	}
)

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) GetUserDonationRequests(ctx context.Context, userID string) ([]*entities.DonationRequest, error) {
	var requests []*entities.DonationRequest
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *trackingRepository) GetUserCompostingRequests(ctx context.Context, userID string) ([]*entities.CompostingRequest, error) {
	var requests []*entities.CompostingRequest
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}
