package donation

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
	DonationService interface {
		CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error)
		GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.DonationResponse, int64, error)
		GetDonationByID(ctx context.Context, id string, userID string) (*domain.DonationResponse, error)
		CancelDonation(ctx context.Context, id string, userID string) error
		GetIncomingRequests(ctx context.Context, userID string, status string) ([]*domain.DonationResponse, error)
		AcceptDonation(ctx context.Context, id string, userID string) error
		RejectDonation(ctx context.Context, id string, userID string) error
	}

	donationService struct {
		donationRepository DonationRepository
		foodRepository     food.FoodRepository
		userRepository     user.UserRepository
	}
)

func NewDonationService(donationRepository DonationRepository, foodRepository food.FoodRepository, userRepository user.UserRepository) DonationService {
	return &donationService{
		donationRepository: donationRepository,
		foodRepository:     foodRepository,
		userRepository:     userRepository,
	}
}

func (s *donationService) CreateDonation(ctx context.Context, req domain.CreateDonationRequest, userID string) (*domain.DonationResponse, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrEmptyItems
	}

	if req.Type != domain.RequestTypePickup && req.Type != domain.RequestTypeDelivery {
		return nil, domain.ErrInvalidRequestType
	}

	if _, err := s.donationRepository.GetOrganizationByID(ctx, req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrInvalidOrganization
		}
		return nil, err
	}

	slot, err := s.donationRepository.GetOrganizationSlotByID(ctx, req.SlotID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, err
	}
	if slot.OrganizationID.String() != req.OrganizationID || !slot.IsAvailable || pastDay(slot.Date) {
		return nil, domain.ErrSlotUnavailable
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	orgUUID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		return nil, domain.ErrParseUUID
	}

	items, err := s.buildItemSnapshots(ctx, req.Items, userID)
	if err != nil {
		return nil, err
	}

	request := &entities.DonationRequest{
		ID:             uuid.New(),
		UserID:         userUUID,
		OrganizationID: orgUUID,
		SlotID:         slot.ID,
		Type:           req.Type,
		Notes:          req.Notes,
		Status:         domain.RequestStatusPending,
	}

	if err := s.donationRepository.CreateDonationRequest(ctx, request, items); err != nil {
		return nil, err
	}

	created, err := s.donationRepository.GetDonationRequestByID(ctx, request.ID.String())
	if err != nil {
		return nil, err
	}

	return toDonationResponse(created), nil
}

// buildItemSnapshots validates every referenced food item before anything is
// written: the id must parse, the item must exist and belong to the
// requester, and the quantity must be numeric.
func (s *donationService) buildItemSnapshots(ctx context.Context, lineItems []domain.RequestLineItem, userID string) ([]*entities.DonationRequestItem, error) {
	items := make([]*entities.DonationRequestItem, 0, len(lineItems))
	for _, line := range lineItems {
		foodItemUUID, err := uuid.Parse(line.FoodItemID)
		if err != nil {
			return nil, domain.ErrParseUUID
		}

		foodItem, err := s.foodRepository.GetFoodItemByID(ctx, line.FoodItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, domain.ErrFoodItemNotFound
			}
			return nil, err
		}
		if foodItem.UserID.String() != userID {
			return nil, domain.ErrUnauthorizedAccess
		}

		quantity, err := strconv.ParseFloat(line.Quantity, 64)
		if err != nil {
			return nil, domain.ErrInvalidItemQuantity
		}

		items = append(items, &entities.DonationRequestItem{
			ID:         uuid.New(),
			FoodItemID: foodItemUUID,
			FoodName:   line.FoodName,
			Quantity:   quantity,
			Unit:       line.Unit,
		})
	}
	return items, nil
}

func (s *donationService) GetUserDonations(ctx context.Context, userID string, page, limit int) ([]*domain.DonationResponse, int64, error) {
	requests, count, err := s.donationRepository.GetUserDonationRequests(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]*domain.DonationResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, toDonationResponse(request))
	}

	return result, count, nil
}

func (s *donationService) GetDonationByID(ctx context.Context, id string, userID string) (*domain.DonationResponse, error) {
	request, err := s.donationRepository.GetDonationRequestByID(ctx, id)
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
		if principal.OrganizationID == nil || *principal.OrganizationID != request.OrganizationID {
			return nil, domain.ErrUnauthorizedRequestAccess
		}
	}

	return toDonationResponse(request), nil
}

func (s *donationService) CancelDonation(ctx context.Context, id string, userID string) error {
	request, err := s.donationRepository.GetDonationRequestByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRequestNotFound
		}
		return err
	}

	if request.UserID.String() != userID {
		return domain.ErrUnauthorizedRequestAccess
	}

	changed, err := s.donationRepository.TransitionStatus(ctx, id, domain.RequestStatusPending, domain.RequestStatusCancelled)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrRequestNotPending
	}

	return nil
}

func (s *donationService) GetIncomingRequests(ctx context.Context, userID string, status string) ([]*domain.DonationResponse, error) {
	principal, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if principal.OrganizationID == nil {
		return nil, domain.ErrUnauthorizedRequestAccess
	}

	if status == "" {
		status = domain.RequestStatusPending
	}

	requests, err := s.donationRepository.GetOrganizationRequests(ctx, principal.OrganizationID.String(), status)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.DonationResponse, 0, len(requests))
	for _, request := range requests {
		result = append(result, toDonationResponse(request))
	}

	return result, nil
}

func (s *donationService) AcceptDonation(ctx context.Context, id string, userID string) error {
	return s.decide(ctx, id, userID, domain.RequestStatusAccepted)
}

func (s *donationService) RejectDonation(ctx context.Context, id string, userID string) error {
	return s.decide(ctx, id, userID, domain.RequestStatusRejected)
}

// decide applies a charity-side decision. The transition only happens while
// the request is still pending, so a retried or double-clicked decision
// returns ErrRequestNotPending instead of overwriting the earlier outcome.
func (s *donationService) decide(ctx context.Context, id string, userID string, toStatus string) error {
	request, err := s.donationRepository.GetDonationRequestByID(ctx, id)
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
	if principal.OrganizationID == nil || *principal.OrganizationID != request.OrganizationID {
		return domain.ErrUnauthorizedRequestAccess
	}

	changed, err := s.donationRepository.TransitionStatus(ctx, id, domain.RequestStatusPending, toStatus)
	if err != nil {
		return err
	}
	if !changed {
		return domain.ErrRequestNotPending
	}

	s.notifyDonor(request, toStatus)

	return nil
}

// notifyDonor sends the decision email best effort; a mail failure never
// rolls back the transition.
func (s *donationService) notifyDonor(request *entities.DonationRequest, status string) {
	if request.User == nil || request.User.Email == "" {
		return
	}

	subject := fmt.Sprintf("Your donation request has been %s", status)
	body := fmt.Sprintf(
		"<p>Hi %s,</p><p>Your donation request from %s has been <b>%s</b>.</p>",
		request.User.Name,
		request.CreatedAt.Format("2 January 2006"),
		status,
	)

	if err := mailing.SendMail(request.User.Email, subject, body); err != nil {
		log.Printf("failed to send donation decision email: %v", err)
	}
}

func pastDay(date time.Time) bool {
	return expiry.DaysUntil(date, time.Now()) < 0
}

func toDonationResponse(request *entities.DonationRequest) *domain.DonationResponse {
	items := make([]domain.RequestLineItemResponse, 0, len(request.Items))
	for _, item := range request.Items {
		items = append(items, domain.RequestLineItemResponse{
			FoodItemID: item.FoodItemID.String(),
			FoodName:   item.FoodName,
			Quantity:   item.Quantity,
			Unit:       item.Unit,
		})
	}

	res := &domain.DonationResponse{
		ID:             request.ID.String(),
		UserID:         request.UserID.String(),
		OrganizationID: request.OrganizationID.String(),
		Items:          items,
		Type:           request.Type,
		SlotID:         request.SlotID.String(),
		Notes:          request.Notes,
		Status:         request.Status,
		CreatedAt:      request.CreatedAt,
		UpdatedAt:      request.UpdatedAt,
	}

	if request.Organization != nil {
		res.OrganizationName = request.Organization.Name
	}
	if request.Slot != nil {
		res.SlotDate = request.Slot.Date
		res.SlotTime = request.Slot.Time
	}

	return res
}
