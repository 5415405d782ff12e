package entities

import (
	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name     string    `json:"name"`
	Email    string    `gorm:"uniqueIndex" json:"email"`
	Password string    `json:"-"`
	Role     string    `json:"role"` // "user", "charity", "farm"

	// Set for charity/farm principals, links them to the entity they manage.
	OrganizationID *uuid.UUID `json:"organization_id,omitempty"`
	FarmID         *uuid.UUID `json:"farm_id,omitempty"`

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
	Farm         *Farm         `gorm:"foreignKey:FarmID"`
	Timestamp
}
