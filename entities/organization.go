package entities

import (
	"github.com/google/uuid"
)

type Organization struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name             string    `json:"name"`
	Address          string    `json:"address"`
	ContactNumber    string    `json:"contact_number"`
	Email            string    `json:"email,omitempty"`
	OperatingHours   string    `json:"operating_hours,omitempty"`
	AcceptedFoodType string    `json:"accepted_food_type,omitempty"`

	Slots []*OrganizationSlot `gorm:"foreignKey:OrganizationID"`
	Timestamp
}
