package slot

import (
	"ecobytes-backend/domain"
	"context"
	"time"
)

type (
	SlotService interface {
		GetOrganizations(ctx context.Context) ([]*domain.OrganizationResponse, error)
		GetFarms(ctx context.Context) ([]*domain.FarmResponse, error)
		GetOrganizationSlots(ctx context.Context, organizationID string, slotType string) ([]*domain.SlotResponse, error)
		GetFarmSlots(ctx context.Context, farmID string, slotType string) ([]*domain.SlotResponse, error)
	}

	slotService struct {
		slotRepository SlotRepository
	}
)

func NewSlotService(slotRepository SlotRepository) SlotService {
	return &slotService{slotRepository: slotRepository}
}

func (s *slotService) GetOrganizations(ctx context.Context) ([]*domain.OrganizationResponse, error) {
	organizations, err := s.slotRepository.GetOrganizations(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.OrganizationResponse, 0, len(organizations))
	for _, org := range organizations {
		result = append(result, &domain.OrganizationResponse{
			ID:               org.ID.String(),
			Name:             org.Name,
			Address:          org.Address,
			ContactNumber:    org.ContactNumber,
			Email:            org.Email,
			OperatingHours:   org.OperatingHours,
			AcceptedFoodType: org.AcceptedFoodType,
		})
	}

	return result, nil
}

func (s *slotService) GetFarms(ctx context.Context) ([]*domain.FarmResponse, error) {
	farms, err := s.slotRepository.GetFarms(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.FarmResponse, 0, len(farms))
	for _, farm := range farms {
		result = append(result, &domain.FarmResponse{
			ID:            farm.ID.String(),
			Name:          farm.Name,
			Address:       farm.Address,
			ContactNumber: farm.ContactNumber,
			Email:         farm.Email,
			CompostTypes:  farm.CompostTypes,
		})
	}

	return result, nil
}

func (s *slotService) GetOrganizationSlots(ctx context.Context, organizationID string, slotType string) ([]*domain.SlotResponse, error) {
	slots, err := s.slotRepository.GetOrganizationSlots(ctx, organizationID, slotType, startOfToday())
	if err != nil {
		return nil, err
	}

	result := make([]*domain.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, &domain.SlotResponse{
			ID:          slot.ID.String(),
			Date:        slot.Date,
			Time:        slot.Time,
			Type:        slot.Type,
			IsAvailable: slot.IsAvailable,
		})
	}

	return result, nil
}

func (s *slotService) GetFarmSlots(ctx context.Context, farmID string, slotType string) ([]*domain.SlotResponse, error) {
	slots, err := s.slotRepository.GetFarmSlots(ctx, farmID, slotType, startOfToday())
	if err != nil {
		return nil, err
	}

	result := make([]*domain.SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, &domain.SlotResponse{
			ID:          slot.ID.String(),
			Date:        slot.Date,
			Time:        slot.Time,
			Type:        slot.Type,
			IsAvailable: slot.IsAvailable,
		})
	}

	return result, nil
}

func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
