package entities

import (
	"github.com/google/uuid"
)

type DonationRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	SlotID         uuid.UUID `json:"slot_id"`
	Type           string    `json:"type"` // "pickup" or "delivery"
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"` // "pending", "accepted", "rejected", "cancelled"

	User         *User                  `gorm:"foreignKey:UserID"`
	Organization *Organization          `gorm:"foreignKey:OrganizationID"`
	Slot         *OrganizationSlot      `gorm:"foreignKey:SlotID"`
	Items        []*DonationRequestItem `gorm:"foreignKey:DonationRequestID"`
	Timestamp
}

// DonationRequestItem is a snapshot of the food item at request time.
// Later edits to the source item do not propagate here.
type DonationRequestItem struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	DonationRequestID uuid.UUID `json:"donation_request_id"`
	FoodItemID        uuid.UUID `json:"food_item_id"`
	FoodName          string    `json:"food_name"`
	Quantity          float64   `json:"quantity"`
	Unit              string    `json:"unit"`

	DonationRequest *DonationRequest `gorm:"foreignKey:DonationRequestID"`
	Timestamp
}
