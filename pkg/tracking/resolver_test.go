package tracking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecobytes-backend/domain"
	"ecobytes-backend/entities"
)

func donationReq(status string, itemIDs ...uuid.UUID) *entities.DonationRequest {
	req := &entities.DonationRequest{
		ID:     uuid.New(),
		Status: status,
	}
	for _, id := range itemIDs {
		req.Items = append(req.Items, &entities.DonationRequestItem{
			ID:         uuid.New(),
			FoodItemID: id,
			FoodName:   "item",
			Quantity:   1,
			Unit:       "kg",
		})
	}
	return req
}

func compostingReq(status string, itemIDs ...uuid.UUID) *entities.CompostingRequest {
	req := &entities.CompostingRequest{
		ID:     uuid.New(),
		Status: status,
	}
	for _, id := range itemIDs {
		req.Items = append(req.Items, &entities.CompostingRequestItem{
			ID:         uuid.New(),
			FoodItemID: id,
			FoodName:   "item",
			Quantity:   1,
			Unit:       "kg",
		})
	}
	return req
}

func TestResolveItemClaims_SingleRequest(t *testing.T) {
	itemID := uuid.New()
	req := donationReq(domain.RequestStatusPending, itemID)

	claims := ResolveItemClaims([]*entities.DonationRequest{req}, nil)

	require.Len(t, claims, 1)
	assert.Equal(t, req.ID, claims[itemID].RequestID)
	assert.Equal(t, KindDonation, claims[itemID].Kind)
	assert.Equal(t, domain.RequestStatusPending, claims[itemID].Status)
}

func TestResolveItemClaims_PendingSupersedesRejected_OrderIndependent(t *testing.T) {
	itemID := uuid.New()
	rejected := donationReq(domain.RequestStatusRejected, itemID)
	pending := donationReq(domain.RequestStatusPending, itemID)

	forward := ResolveItemClaims([]*entities.DonationRequest{rejected, pending}, nil)
	reverse := ResolveItemClaims([]*entities.DonationRequest{pending, rejected}, nil)

	assert.Equal(t, domain.RequestStatusPending, forward[itemID].Status)
	assert.Equal(t, domain.RequestStatusPending, reverse[itemID].Status)
	assert.Equal(t, pending.ID, forward[itemID].RequestID)
	assert.Equal(t, pending.ID, reverse[itemID].RequestID)
}

func TestResolveItemClaims_AcceptedAlwaysWins(t *testing.T) {
	itemID := uuid.New()
	rejected := donationReq(domain.RequestStatusRejected, itemID)
	accepted := donationReq(domain.RequestStatusAccepted, itemID)

	forward := ResolveItemClaims([]*entities.DonationRequest{rejected, accepted}, nil)
	reverse := ResolveItemClaims([]*entities.DonationRequest{accepted, rejected}, nil)

	assert.Equal(t, domain.RequestStatusAccepted, forward[itemID].Status)
	assert.Equal(t, domain.RequestStatusAccepted, reverse[itemID].Status)
}

func TestResolveItemClaims_AcceptedNotDowngraded(t *testing.T) {
	itemID := uuid.New()
	accepted := donationReq(domain.RequestStatusAccepted, itemID)
	pending := donationReq(domain.RequestStatusPending, itemID)
	rejected := donationReq(domain.RequestStatusRejected, itemID)

	claims := ResolveItemClaims([]*entities.DonationRequest{accepted, pending, rejected}, nil)

	assert.Equal(t, domain.RequestStatusAccepted, claims[itemID].Status)
	assert.Equal(t, accepted.ID, claims[itemID].RequestID)
}

func TestResolveItemClaims_PendingNotReplacedByPending(t *testing.T) {
	itemID := uuid.New()
	first := donationReq(domain.RequestStatusPending, itemID)
	second := donationReq(domain.RequestStatusPending, itemID)

	claims := ResolveItemClaims([]*entities.DonationRequest{first, second}, nil)

	assert.Equal(t, first.ID, claims[itemID].RequestID)
}

func TestResolveItemClaims_SpansBothRequestKinds(t *testing.T) {
	donatedItem := uuid.New()
	compostedItem := uuid.New()

	donations := []*entities.DonationRequest{donationReq(domain.RequestStatusPending, donatedItem)}
	compostings := []*entities.CompostingRequest{compostingReq(domain.RequestStatusAccepted, compostedItem)}

	claims := ResolveItemClaims(donations, compostings)

	require.Len(t, claims, 2)
	assert.Equal(t, KindDonation, claims[donatedItem].Kind)
	assert.Equal(t, KindComposting, claims[compostedItem].Kind)
}

func TestResolveItemClaims_CompostingAcceptedWinsOverDonationRejected(t *testing.T) {
	itemID := uuid.New()

	donations := []*entities.DonationRequest{donationReq(domain.RequestStatusRejected, itemID)}
	compostings := []*entities.CompostingRequest{compostingReq(domain.RequestStatusAccepted, itemID)}

	claims := ResolveItemClaims(donations, compostings)

	assert.Equal(t, KindComposting, claims[itemID].Kind)
	assert.Equal(t, domain.RequestStatusAccepted, claims[itemID].Status)
}

func TestResolveItemClaims_Empty(t *testing.T) {
	claims := ResolveItemClaims(nil, nil)
	assert.Empty(t, claims)
}
