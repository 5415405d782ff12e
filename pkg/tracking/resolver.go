package tracking

import (
	"ecobytes-backend/domain"
	"ecobytes-backend/entities"

	"github.com/google/uuid"
)

const (
	KindDonation   = "donation"
	KindComposting = "composting"
)

// ItemClaim marks a food item as referenced by a request. At most one claim
// is kept per item.
type ItemClaim struct {
	RequestID uuid.UUID
	Kind      string
	Status    string
}

// ResolveItemClaims walks every line item across both request kinds and keeps
// one claim per food item. When several requests reference the same item, a
// later claim replaces the current one only if there is none yet, the new
// status is accepted, or the new status is pending and the current one is
// rejected. The result does not depend on iteration order.
func ResolveItemClaims(donations []*entities.DonationRequest, compostings []*entities.CompostingRequest) map[uuid.UUID]ItemClaim {
	claims := make(map[uuid.UUID]ItemClaim)

	for _, req := range donations {
		for _, item := range req.Items {
			applyClaim(claims, item.FoodItemID, ItemClaim{
				RequestID: req.ID,
				Kind:      KindDonation,
				Status:    req.Status,
			})
		}
	}

	for _, req := range compostings {
		for _, item := range req.Items {
			applyClaim(claims, item.FoodItemID, ItemClaim{
				RequestID: req.ID,
				Kind:      KindComposting,
				Status:    req.Status,
			})
		}
	}

	return claims
}

func applyClaim(claims map[uuid.UUID]ItemClaim, foodItemID uuid.UUID, claim ItemClaim) {
	existing, ok := claims[foodItemID]
	if !ok {
		claims[foodItemID] = claim
		return
	}

	// Accepted always wins; a fresh pending submission supersedes a stale
	// rejection. Everything else keeps the existing claim.
	if claim.Status == domain.RequestStatusAccepted {
		claims[foodItemID] = claim
		return
	}
	if claim.Status == domain.RequestStatusPending && existing.Status == domain.RequestStatusRejected {
		claims[foodItemID] = claim
	}
}
