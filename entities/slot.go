package entities

import (
	"github.com/google/uuid"
	"time"
)

type OrganizationSlot struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"` // "HH:MM"
	Type           string    `json:"type"` // "pickup" or "delivery"
	IsAvailable    bool      `json:"is_available"`

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
	Timestamp
}

type FarmSlot struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FarmID      uuid.UUID `json:"farm_id"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"` // "HH:MM"
	Type        string    `json:"type"` // "pickup" or "delivery"
	IsAvailable bool      `json:"is_available"`

	Farm *Farm `gorm:"foreignKey:FarmID"`
	Timestamp
}
