package entities

import (
	"github.com/google/uuid"
)

type Farm struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email,omitempty"`
	CompostTypes  string    `json:"compost_types,omitempty"`

	Slots []*FarmSlot `gorm:"foreignKey:FarmID"`
	Timestamp
}
