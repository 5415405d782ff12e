package entities

import (
	"github.com/google/uuid"
	"time"
)

type FoodItem struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	Category            string    `json:"category"`
	Quantity            float64   `json:"quantity"`
	Unit                string    `json:"unit"`
	DeclaredExpiryDate  time.Time `json:"declared_expiry_date"`
	PredictedExpiryDate time.Time `json:"predicted_expiry_date"`
	StorageLocation     string    `json:"storage_location,omitempty"`
	Notes               string    `json:"notes,omitempty"`
	ImageURL            string    `json:"image_url,omitempty"`

	// Provenance metadata, filled when the item comes from a traceable source.
	Origin       string `json:"origin,omitempty"`
	FarmName     string `json:"farm_name,omitempty"`
	HarvestInfo  string `json:"harvest_info,omitempty"`
	Authenticity string `json:"authenticity,omitempty"`

	// Optional environmental sensor readings used by the expiry prediction.
	Temperature *float64 `json:"temperature,omitempty"`
	Humidity    *float64 `json:"humidity,omitempty"`
	PH          *float64 `json:"ph,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
