package entities

import (
	"github.com/google/uuid"
	"time"
)

type CompostingRequest struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	FarmID         uuid.UUID `json:"farm_id"`
	SlotID         uuid.UUID `json:"slot_id"`
	Type           string    `json:"type"` // "pickup" or "delivery"
	Notes          string    `json:"notes,omitempty"`
	Status         string    `json:"status"` // "pending", "accepted", "rejected", "cancelled"
	Quantity       float64   `json:"quantity"`
	CompostingDate time.Time `json:"composting_date"`

	User  *User                    `gorm:"foreignKey:UserID"`
	Farm  *Farm                    `gorm:"foreignKey:FarmID"`
	Slot  *FarmSlot                `gorm:"foreignKey:SlotID"`
	Items []*CompostingRequestItem `gorm:"foreignKey:CompostingRequestID"`
	Timestamp
}

// CompostingRequestItem is a snapshot of the food item at request time,
// same shape as DonationRequestItem.
type CompostingRequestItem struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CompostingRequestID uuid.UUID `json:"composting_request_id"`
	FoodItemID          uuid.UUID `json:"food_item_id"`
	FoodName            string    `json:"food_name"`
	Quantity            float64   `json:"quantity"`
	Unit                string    `json:"unit"`

	CompostingRequest *CompostingRequest `gorm:"foreignKey:CompostingRequestID"`
	Timestamp
}
