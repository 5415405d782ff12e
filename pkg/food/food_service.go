package food

import (
	"ecobytes-backend/domain"
	"ecobytes-backend/entities"
	"ecobytes-backend/internal/utils/storage"
	"ecobytes-backend/pkg/expiry"
	"ecobytes-backend/pkg/tracking"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ViewAll      = "all"
	ViewPending  = "pending"
	ViewAccepted = "accepted"
)

type (
	FoodService interface {
		AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error)
		UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error
		DeleteFoodItem(ctx context.Context, id string, userID string) error
		GetFoodItems(ctx context.Context, userID string, status string, view string, page, limit int) ([]domain.FoodItemResponse, int64, error)
		GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error)
		UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error
		GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error)
	}

	foodService struct {
		foodRepository  FoodRepository
		trackingService tracking.TrackingService
		s3              storage.AwsS3
	}
)

func NewFoodService(foodRepository FoodRepository, trackingService tracking.TrackingService, s3 storage.AwsS3) FoodService {
	return &foodService{
		foodRepository:  foodRepository,
		trackingService: trackingService,
		s3:              s3,
	}
}

func (s *foodService) AddFoodItem(ctx context.Context, req domain.AddFoodItemRequest, userID string) (domain.FoodItemResponse, error) {
	declaredDate, err := time.Parse("2006-01-02", req.ExpiryDate)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrInvalidExpiryDate
	}

	if req.Quantity <= 0 {
		return domain.FoodItemResponse{}, domain.ErrInvalidQuantity
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.FoodItemResponse{}, domain.ErrParseUUID
	}

	foodItem := &entities.FoodItem{
		ID:                 uuid.New(),
		UserID:             userUUID,
		Name:               req.Name,
		Category:           req.Category,
		Quantity:           req.Quantity,
		Unit:               req.Unit,
		DeclaredExpiryDate: declaredDate,
		StorageLocation:    req.StorageLocation,
		Notes:              req.Notes,
		Origin:             req.Origin,
		FarmName:           req.FarmName,
		HarvestInfo:        req.HarvestInfo,
		Authenticity:       req.Authenticity,
	}

	if req.SensorData != nil {
		foodItem.Temperature = req.SensorData.Temperature
		foodItem.Humidity = req.SensorData.Humidity
		foodItem.PH = req.SensorData.PH
	}

	foodItem.PredictedExpiryDate = expiry.PredictExpiry(declaredDate, sensorReadings(foodItem))

	if err := s.foodRepository.AddFoodItem(ctx, foodItem); err != nil {
		return domain.FoodItemResponse{}, err
	}

	return toFoodItemResponse(foodItem, nil), nil
}

func (s *foodService) UpdateFoodItem(ctx context.Context, id string, req domain.UpdateFoodItemRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if req.Name != "" {
		foodItem.Name = req.Name
	}

	if req.Category != "" {
		foodItem.Category = req.Category
	}

	if req.Quantity > 0 {
		foodItem.Quantity = req.Quantity
	}

	if req.Unit != "" {
		foodItem.Unit = req.Unit
	}

	if req.StorageLocation != "" {
		foodItem.StorageLocation = req.StorageLocation
	}

	if req.Notes != "" {
		foodItem.Notes = req.Notes
	}

	if req.ExpiryDate != "" {
		declaredDate, err := time.Parse("2006-01-02", req.ExpiryDate)
		if err != nil {
			return domain.ErrInvalidExpiryDate
		}
		foodItem.DeclaredExpiryDate = declaredDate
	}

	if req.SensorData != nil {
		foodItem.Temperature = req.SensorData.Temperature
		foodItem.Humidity = req.SensorData.Humidity
		foodItem.PH = req.SensorData.PH
	}

	// Dates and readings may both have changed, so the prediction is always
	// recomputed on update.
	foodItem.PredictedExpiryDate = expiry.PredictExpiry(foodItem.DeclaredExpiryDate, sensorReadings(foodItem))

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) DeleteFoodItem(ctx context.Context, id string, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	if foodItem.ImageURL != "" {
		objectKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		if objectKey != "" {
			_ = s.s3.DeleteFile(objectKey)
		}
	}

	return s.foodRepository.DeleteFoodItem(ctx, id)
}

func (s *foodService) GetFoodItems(ctx context.Context, userID string, status string, view string, page, limit int) ([]domain.FoodItemResponse, int64, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	claims, err := s.trackingService.GetItemClaims(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	filtered := make([]domain.FoodItemResponse, 0, len(foodItems))
	for _, item := range foodItems {
		itemStatus := expiry.Classify(item.PredictedExpiryDate)
		if status != "all" && status != "" && itemStatus != status {
			continue
		}

		claim, claimed := claims[item.ID]
		switch view {
		case ViewPending:
			if !claimed || claim.Status != domain.RequestStatusPending {
				continue
			}
		case ViewAccepted:
			if !claimed || claim.Status != domain.RequestStatusAccepted {
				continue
			}
		}

		var claimResponse *domain.ItemClaimResponse
		if claimed {
			claimResponse = &domain.ItemClaimResponse{
				RequestID:   claim.RequestID.String(),
				RequestKind: claim.Kind,
				Status:      claim.Status,
			}
		}

		filtered = append(filtered, toFoodItemResponse(item, claimResponse))
	}

	count := int64(len(filtered))

	// Paginate after filtering because both filters depend on derived state.
	start := (page - 1) * limit
	if start >= len(filtered) {
		return []domain.FoodItemResponse{}, count, nil
	}
	end := start + limit
	if end > len(filtered) {
		end = len(filtered)
	}

	return filtered[start:end], count, nil
}

func (s *foodService) GetFoodItemByID(ctx context.Context, id string, userID string) (domain.FoodItemResponse, error) {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.FoodItemResponse{}, domain.ErrFoodItemNotFound
		}
		return domain.FoodItemResponse{}, err
	}

	if foodItem.UserID.String() != userID {
		return domain.FoodItemResponse{}, domain.ErrUnauthorizedAccess
	}

	claims, err := s.trackingService.GetItemClaims(ctx, userID)
	if err != nil {
		return domain.FoodItemResponse{}, err
	}

	var claimResponse *domain.ItemClaimResponse
	if claim, ok := claims[foodItem.ID]; ok {
		claimResponse = &domain.ItemClaimResponse{
			RequestID:   claim.RequestID.String(),
			RequestKind: claim.Kind,
			Status:      claim.Status,
		}
	}

	return toFoodItemResponse(foodItem, claimResponse), nil
}

func (s *foodService) UploadFoodImage(ctx context.Context, req domain.UploadFoodImageRequest, userID string) error {
	foodItem, err := s.foodRepository.GetFoodItemByID(ctx, req.FoodItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrFoodItemNotFound
		}
		return err
	}

	if foodItem.UserID.String() != userID {
		return domain.ErrUnauthorizedAccess
	}

	fileName := fmt.Sprintf("food-%s", foodItem.ID.String())

	var objectKey string
	if foodItem.ImageURL != "" {
		existingKey := s.s3.GetObjectKeyFromLink(foodItem.ImageURL)
		objectKey, err = s.s3.UpdateFile(existingKey, req.Image, storage.AllowImage...)
	} else {
		objectKey, err = s.s3.UploadFile(fileName, req.Image, "food-items", storage.AllowImage...)
	}
	if err != nil {
		return err
	}

	foodItem.ImageURL = s.s3.GetPublicLinkKey(objectKey)

	return s.foodRepository.UpdateFoodItem(ctx, foodItem)
}

func (s *foodService) GetDashboardStats(ctx context.Context, userID string) (domain.DashboardStatsResponse, error) {
	foodItems, err := s.foodRepository.GetFoodItems(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	claims, err := s.trackingService.GetItemClaims(ctx, userID)
	if err != nil {
		return domain.DashboardStatsResponse{}, err
	}

	stats := domain.DashboardStatsResponse{TotalItems: len(foodItems)}

	for _, item := range foodItems {
		switch expiry.Classify(item.PredictedExpiryDate) {
		case expiry.StatusFresh:
			stats.FreshItems++
		case expiry.StatusNearExpiry:
			stats.NearExpiryItems++
		case expiry.StatusExpired:
			stats.ExpiredItems++
		}

		if claim, ok := claims[item.ID]; ok {
			switch claim.Status {
			case domain.RequestStatusPending:
				stats.PendingItems++
			case domain.RequestStatusAccepted:
				stats.AcceptedItems++
			}
		}
	}

	return stats, nil
}

// sensorReadings maps the item's stored readings into the predictor's input,
// nil when no reading is present.
func sensorReadings(item *entities.FoodItem) *expiry.SensorData {
	if item.Temperature == nil && item.Humidity == nil && item.PH == nil {
		return nil
	}
	return &expiry.SensorData{
		Temperature: item.Temperature,
		Humidity:    item.Humidity,
		PH:          item.PH,
	}
}

func toFoodItemResponse(item *entities.FoodItem, claim *domain.ItemClaimResponse) domain.FoodItemResponse {
	return domain.FoodItemResponse{
		ID:                  item.ID.String(),
		Name:                item.Name,
		Category:            item.Category,
		Quantity:            item.Quantity,
		Unit:                item.Unit,
		DeclaredExpiryDate:  item.DeclaredExpiryDate,
		PredictedExpiryDate: item.PredictedExpiryDate,
		Status:              expiry.Classify(item.PredictedExpiryDate),
		StorageLocation:     item.StorageLocation,
		Notes:               item.Notes,
		Origin:              item.Origin,
		FarmName:            item.FarmName,
		HarvestInfo:         item.HarvestInfo,
		Authenticity:        item.Authenticity,
		ImageURL:            item.ImageURL,
		Claim:               claim,
		CreatedAt:           item.CreatedAt,
	}
}
