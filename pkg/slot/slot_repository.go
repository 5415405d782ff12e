package slot

import (
	"ecobytes-backend/entities"
	"context"
	"time"

	"gorm.io/gorm"
)

type (
	SlotRepository interface {
		GetOrganizations(ctx context.Context) ([]*entities.Organization, error)
		GetFarms(ctx context.Context) ([]*entities.Farm, error)
		GetOrganizationSlots(ctx context.Context, organizationID string, slotType string, from time.Time) ([]*entities.OrganizationSlot, error)
		GetFarmSlots(ctx context.Context, farmID string, slotType string, from time.Time) ([]*entities.FarmSlot, error)
	}

	slotRepository struct {
		db *gorm.DB
	}
)

func NewSlotRepository(db *gorm.DB) SlotRepository {
	return &slotRepository{db: db}
}

func (r *slotRepository) GetOrganizations(ctx context.Context) ([]*entities.Organization, error) {
	var organizations []*entities.Organization
	if err := r.db.WithContext(ctx).Order("name").Find(&organizations).Error; err != nil {
		return nil, err
	}
	return organizations, nil
}

func (r *slotRepository) GetFarms(ctx context.Context) ([]*entities.Farm, error) {
	var farms []*entities.Farm
	if err := r.db.WithContext(ctx).Order("name").Find(&farms).Error; err != nil {
		return nil, err
	}
	return farms, nil
}

func (r *slotRepository) GetOrganizationSlots(ctx context.Context, organizationID string, slotType string, from time.Time) ([]*entities.OrganizationSlot, error) {
	query := r.db.WithContext(ctx).
		Where("organization_id = ? AND is_available = ? AND date >= ?", organizationID, true, from)

	if slotType != "" {
		query = query.Where("type = ?", slotType)
	}

	var slots []*entities.OrganizationSlot
	if err := query.Order("date").Order("time").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}

func (r *slotRepository) GetFarmSlots(ctx context.Context, farmID string, slotType string, from time.Time) ([]*entities.FarmSlot, error) {
	query := r.db.WithContext(ctx).
		Where("farm_id = ? AND is_available = ? AND date >= ?", farmID, true, from)

	if slotType != "" {
		query = query.Where("type = ?", slotType)
	}

	var slots []*entities.FarmSlot
	if err := query.Order("date").Order("time").Find(&slots).Error; err != nil {
		return nil, err
	}
	return slots, nil
}
