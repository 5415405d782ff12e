package donation

import (
	"ecobytes-backend/entities"
	"context"

	"gorm.io/gorm"
)

type (
	DonationRepository interface {
		GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error)
		GetOrganizationSlotByID(ctx context.Context, id string) (*entities.OrganizationSlot, error)

		CreateDonationRequest(ctx context.Context, request *entities.DonationRequest, items []*entities.DonationRequestItem) error
		GetDonationRequestByID(ctx context.Context, id string) (*entities.DonationRequest, error)
		GetUserDonationRequests(ctx context.Context, userID string, page, limit int) ([]*entities.DonationRequest, int64, error)
		GetOrganizationRequests(ctx context.Context, organizationID string, status string) ([]*entities.DonationRequest, error)
		TransitionStatus(ctx context.Context, id string, fromStatus, toStatus string) (bool, error)
	}

	donationRepository struct {
		db *gorm.DB
	}
)

func NewDonationRepository(db *gorm.DB) DonationRepository {
	return &donationRepository{db: db}
}

func (r *donationRepository) GetOrganizationByID(ctx context.Context, id string) (*entities.Organization, error) {
	var organization entities.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&organization).Error; err != nil {
		return nil, err
	}
	return &organization, nil
}

func (r *donationRepository) GetOrganizationSlotByID(ctx context.Context, id string) (*entities.OrganizationSlot, error) {
	var slot entities.OrganizationSlot
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&slot).Error; err != nil {
		return nil, err
	}
	return &slot, nil
}

// CreateDonationRequest inserts the request and its item snapshots in one
// transaction so a failed snapshot insert never leaves a partial request.
func (r *donationRepository) CreateDonationRequest(ctx context.Context, request *entities.DonationRequest, items []*entities.DonationRequestItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(request).Error; err != nil {
			return err
		}
		for _, item := range items {
			item.DonationRequestID = request.ID
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *donationRepository) GetDonationRequestByID(ctx context.Context, id string) (*entities.DonationRequest, error) {
	var request entities.DonationRequest
	if err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Organization").
		Preload("Slot").
		Preload("Items").
		Where("id = ?", id).
		First(&request).Error; err != nil {
		return nil, err
	}
	return &request, nil
}

func (r *donationRepository) GetUserDonationRequests(ctx context.Context, userID string, page, limit int) ([]*entities.DonationRequest, int64, error) {
	var requests []*entities.DonationRequest
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).
		Model(&entities.DonationRequest{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Organization").
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

func (r *donationRepository) GetOrganizationRequests(ctx context.Context, organizationID string, status string) ([]*entities.DonationRequest, error) {
	query := r.db.WithContext(ctx).
		Preload("User").
		Preload("Slot").
		Preload("Items").
		Where("organization_id = ?", organizationID)

	if status != "" && status != "all" {
		query = query.Where("status = ?", status)
	}

	var requests []*entities.DonationRequest
	if err := query.Order("created_at DESC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// TransitionStatus performs a guarded conditional update: the row changes
// only while its status still equals fromStatus. Returns false when the
// request already left that state.
func (r *donationRepository) TransitionStatus(ctx context.Context, id string, fromStatus, toStatus string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.DonationRequest{}).
		Where("id = ? AND status = ?", id, fromStatus).
		Update("status", toStatus)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
