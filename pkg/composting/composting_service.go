package composting

import (
	"ecobytes-backend/domain"
	"ecobytes-backend/entities"
	"ecobytes-backend/internal/utils/mailing"
	"ecobytes-backend/pkg/expiry"
	"ecobytes-backend/pkg/food"
	"ecobytes-backend/pkg/user"
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CompostingService interface {
		CreateComposting(ctx context.Context, req domain.CreateCompostingRequest, userID string) (*domain.CompostingResponse, error)
		GetUserCompostings(ctx context.Context, userID string, page, limit int) ([]*domain.CompostingResponse, int64, error)
		GetCompostingByID(ctx context.Context, id string, userID string) (*domain.CompostingResponse, error)
		CancelComposting(ctx context.Context, id string, userID string) error
		GetIncomingRequests(ctx context.Context, userID string, status string) ([]*domain.CompostingResponse, error)
		AcceptComposting(ctx context.Context, id string, userID string) error
		RejectComposting(ctx context.Context, id string, userID string) error
	}

	compostingService struct {
		compostingRepository CompostingRepository
		foodRepository       food.FoodRepository
		userRepository       user.UserRepository
	}
)

func NewCompostingService(compostingRepository CompostingRepository, foodRepository food.FoodRepository, userRepository user.UserRepository) CompostingService {
	return &compostingService{
		compostingRepository: compostingRepository,
		foodRepository:       foodRepository,
		userRepository:       userRepository,
	}
}

func (s *compostingService) CreateComposting(ctx context.Context, req domain.CreateCompostingRequest, userID string) (*domain.CompostingResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	if req.Type != domain.RequestTypePickup && req.Type != domain.RequestTypeDelivery {
		return nil, domain.ErrInvalidRequestType
	}

	if _, err := s.compostingRepository.GetFarmByID(ctx, req.FarmID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidFarm
		}
		return nil, err
	}

	slot, err := s.compostingRepository.GetFarmSlotByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}
	if slot.FarmID.String() != req.FarmID || !slot.IsAvailable || pastDay(slot.Date) {
		return nil, domain.ErrSlotUnavailable
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	farmUUID, err := uuid.Parse(req.FarmID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, total, err := s.buildItemSnapshots(ctx, req.Items, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request := &entities.CompostingRequest{
		ID:             uuid.New(),
		UserID:         userUUID,
		FarmID:         farmUUID,
		SlotID:         slot.ID,
		Type:           req.Type,
		Notes:          req.Notes,
		Status:         domain.RequestStatusPending,
		Quantity:       total,
		CompostingDate: time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()),
	}

	if err := s.compostingRepository.CreateCompostingRequest(ctx, request, items); err != nil {
		return nil, err
	}

	created, err := s.compostingRepository.GetCompostingRequestByID(ctx, request.ID.String())
	if err != nil {
		return nil, err
	}

	return toCompostingResponse(created), nil
}

// buildItemSnapshots validates referenced items and sums their quantities.
// A non-numeric quantity rejects the whole request instead of poisoning the
// total.
func (s *compostingService) buildItemSnapshots(ctx context.Context, lineItems []domain.RequestLineItem, userID string) ([]*entities.CompostingRequestItem, float64, error) {
	items := make([]*entities.CompostingRequestItem, 0, len(lineItems))
	var total float64

	for _, line := range lineItems {
		foodItemUUID, err := uuid.Parse(line.FoodItemID)
		if err != nil {
			return nil, 0, domain.ErrParseUUID
		}

		foodItem, err := s.foodRepository.GetFoodItemByID(ctx, line.FoodItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, 0, domain.ErrFoodItemNotFound
			}
			return nil, 0, err
		}
		if foodItem.UserID.String() != userID {
			return nil, 0, domain.ErrUnauthorizedAccess
		}

		quantity, err := strconv.ParseFloat(line.Quantity, 64)
		if err != nil {
			return nil, 0, domain.ErrInvalidItemQuantity
		}
		total += quantity

		items = append(items, &entities.CompostingRequestItem{
			ID:         uuid.New(),
			FoodItemID: foodItemUUID,
			FoodName:   line.FoodName,
			Quantity:   quantity,
			Unit:       line.Unit,
		})
	}

	return items, total, nil
}

func (s *compostingService) GetUserCompostings(ctx context.Context, userID string, page, limit int) ([]*domain.CompostingResponse, int64, error) {
	requests, count, err := s.compostingRepository.GetUserCompostingRequests(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.CompostingResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, toCompostingResponse(request))
	}

	return result, count, nil
}

func (s *compostingService) GetCompostingByID(ctx context.Context, id string, userID string) (*domain.CompostingResponse, error) {
	request, err := s.compostingRepository.GetCompostingRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, err
	}

	if request.UserID.String() != userID {
		principal, err := s.userRepository.GetUserByID(ctx, userID)
		if err != nil {
			return nil, domain.ErrUnauthorizedRequestAccess
		}
		if principal.FarmID == nil || *principal.FarmID != request.FarmID {
			return nil, domain.ErrUnauthorizedRequestAccess
		}
	}

	return toCompostingResponse(request), nil
}

func (s *compostingService) CancelComposting(ctx context.Context, id string, userID string) error {
	request, err := s.compostingRepository.GetCompostingRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	if request.UserID.String() != userID {
		return domain.ErrUnauthorizedRequestAccess
	}

	changed, err := s.compostingRepository.TransitionStatus(ctx, id, domain.RequestStatusPending, domain.RequestStatusCancelled)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrRequestNotPending
	}

	return nil
}

func (s *compostingService) GetIncomingRequests(ctx context.Context, userID string, status string) ([]*domain.CompostingResponse, error) {
	principal, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if principal.FarmID == nil {
		return nil, domain.ErrUnauthorizedRequestAccess
	}

	if status == "" {
		status = domain.RequestStatusPending
	}

	requests, err := s.compostingRepository.GetFarmRequests(ctx, principal.FarmID.String(), status)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.CompostingResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, toCompostingResponse(request))
	}

	return result, nil
}

func (s *compostingService) AcceptComposting(ctx context.Context, id string, userID string) error {
	return s.decide(ctx, id, userID, domain.RequestStatusAccepted)
}

func (s *compostingService) RejectComposting(ctx context.Context, id string, userID string) error {
	return s.decide(ctx, id, userID, domain.RequestStatusRejected)
}

func (s *compostingService) decide(ctx context.Context, id string, userID string, toStatus string) error {
	request, err := s.compostingRepository.GetCompostingRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	principal, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if principal.FarmID == nil || *principal.FarmID != request.FarmID {
		return domain.ErrUnauthorizedRequestAccess
	}

	changed, err := s.compostingRepository.TransitionStatus(ctx, id, domain.RequestStatusPending, toStatus)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrRequestNotPending
	}

	s.notifyRequester(request, toStatus)

	return nil
}

func (s *compostingService) notifyRequester(request *entities.CompostingRequest, status string) {
	if request.User == nil || request.User.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your composting request has been %s", status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your composting request from %s has been <b>%s</b>.</p>",
		request.User.Name,
		request.CreatedAt.Format("2 January 2006"),
		status,
	)

	if err := mailing.SendMail(request.User.Email, subject, body); err != nil {
		log.Printf("failed to send composting decision email: %v", err)
	}
}

func pastDay(date time.Time) bool {
	return expiry.DaysUntil(date, time.Now()) < 0
}

func toCompostingResponse(request *entities.CompostingRequest) *domain.CompostingResponse {
	items := make([]domain.RequestLineItemResponse, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, domain.RequestLineItemResponse{
			FoodItemID: item.FoodItemID.String(),
			FoodName:   item.FoodName,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
		})
	}

	res := &domain.CompostingResponse{
		ID:             request.ID.String(),
		UserID:         request.UserID.String(),
		FarmID:         request.FarmID.String(),
		Items:          items,
		Type:           request.Type,
		SlotID:         request.SlotID.String(),
		Notes:          request.Notes,
		Status:         request.Status,
		Quantity:       request.Quantity,
		CompostingDate: request.CompostingDate,
		CreatedAt:      request.CreatedAt,
		UpdatedAt:      request.UpdatedAt,
	}

	if request.Farm != nil {
		res.FarmName = request.Farm.Name
	}
	if request.Slot != nil {
		res.SlotDate = request.Slot.Date
		res.SlotTime = request.Slot.Time
	}

	return res
}
