package composting

import (
	"ecobytes-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	CompostingRepository interface {
		GetFarmByID(ctx context.Context, id string) (*entities.Farm, error)
		GetFarmSlotByID(ctx context.Context, id string) (*entities.FarmSlot, error)

		CreateCompostingRequest(ctx context.Context, request *entities.CompostingRequest, items []*entities.CompostingRequestItem) error
		GetCompostingRequestByID(ctx context.Context, id string) (*entities.CompostingRequest, error)
		GetUserCompostingRequests(ctx context.Context, userID string, page, limit int) ([]*entities.CompostingRequest, int64, error)
		GetFarmRequests(ctx context.Context, farmID string, status string) ([]*entities.CompostingRequest, error)
		TransitionStatus(ctx context.Context, id string, fromStatus, toStatus string) (bool, error)
	}

	compostingRepository struct {
		db *gorm.DB
	}
)

func NewCompostingRepository(db *gorm.DB) CompostingRepository {
	return &compostingRepository{db: db}
}

func (r *compostingRepository) GetFarmByID(ctx context.Context, id string) (*entities.Farm, error) {
	var farm entities.Farm
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&farm).Error; err != nil {
		return nil, err
	}
	return &farm, nil
}

func (r *compostingRepository) GetFarmSlotByID(ctx context.Context, id string) (*entities.FarmSlot, error) {
	var slot entities.FarmSlot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

func (r *compostingRepository) CreateCompostingRequest(ctx context.Context, request *entities.CompostingRequest, items []*entities.CompostingRequestItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(request).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.CompostingRequestID = request.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *compostingRepository) GetCompostingRequestByID(ctx context.Context, id string) (*entities.CompostingRequest, error) {
	var request entities.CompostingRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Farm").
		Preload("Slot").
		Preload("Items").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *compostingRepository) GetUserCompostingRequests(ctx context.Context, userID string, page, limit int) ([]*entities.CompostingRequest, int64, error) {
	var requests []*entities.CompostingRequest
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.CompostingRequest{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Farm").
		Preload("Slot").
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&requests).Error; err != nil {
		return nil, 0, err
	}

	return requests, count, nil
}

func (r *compostingRepository) GetFarmRequests(ctx context.Context, farmID string, status string) ([]*entities.CompostingRequest, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Slot").
		Preload("Items").
		Where("farm_id = ?", farmID)

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var requests []*entities.CompostingRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// TransitionStatus mirrors the donation-side guard: only a still-pending row
// transitions, everything else reports no change.
func (r *compostingRepository) TransitionStatus(ctx context.Context, id string, fromStatus, toStatus string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.CompostingRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
