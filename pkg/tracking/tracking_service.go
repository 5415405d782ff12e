package tracking

import (
	"context"

	"github.com/google/uuid"
)

type (
	TrackingService interface {
		GetItemClaims(ctx context.Context, userID string) (map[uuid.UUID]ItemClaim, error)
	}

	trackingService struct {
		trackingRepository TrackingRepository
	}
)

func NewTrackingService(trackingRepository TrackingRepository) TrackingService {
	return &trackingService{trackingRepository: trackingRepository}
}

func (s *trackingService) GetItemClaims(ctx context.Context, userID string) (map[uuid.UUID]ItemClaim, error) {
	donations, err := s.trackingRepository.GetUserDonationRequests(ctx, userID)
	if err != nil {
		return nil, err
	}

	compostings, err := s.trackingRepository.GetUserCompostingRequests(ctx, userID)
	if err != nil {
		return nil, err
	}

	return ResolveItemClaims(donations, compostings), nil
}
