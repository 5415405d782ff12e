package domain

import (
	"errors"
	"mime/multipart"
	"time"
)

var (
	MessageSuccessAddFoodItem       = "food item added successfully"
	MessageSuccessUpdateFoodItem    = "food item updated successfully"
	MessageSuccessDeleteFoodItem    = "food item deleted successfully"
	MessageSuccessGetFoodItems      = "food items retrieved successfully"
	MessageSuccessUploadFoodImage   = "food image uploaded successfully"
	MessageSuccessGetDashboardStats = "dashboard statistics retrieved successfully"

	MessageFailedAddFoodItem       = "failed to add food item"
	MessageFailedUpdateFoodItem    = "failed to update food item"
	MessageFailedDeleteFoodItem    = "failed to delete food item"
	MessageFailedGetFoodItems      = "failed to retrieve food items"
	MessageFailedUploadFoodImage   = "failed to upload food image"
	MessageFailedGetDashboardStats = "failed to retrieve dashboard statistics"

	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrInvalidExpiryDate  = errors.New("invalid expiry date")
	ErrInvalidQuantity    = errors.New("quantity must be positive")
	ErrUnauthorizedAccess = errors.New("unauthorized access to food item")
)

type (
	SensorDataRequest struct {
		Temperature *float64 `json:"temperature" validate:"omitempty"`
		Humidity    *float64 `json:"humidity" validate:"omitempty,min=0,max=100"`
		PH          *float64 `json:"ph" validate:"omitempty,min=0,max=14"`
	}

	AddFoodItemRequest struct {
		Name            string             `json:"name" validate:"required"`
		Category        string             `json:"category" validate:"required"`
		Quantity        float64            `json:"quantity" validate:"required,gt=0"`
		Unit            string             `json:"unit" validate:"required"`
		ExpiryDate      string             `json:"expiry_date" validate:"required"`
		StorageLocation string             `json:"storage_location" validate:"omitempty"`
		Notes           string             `json:"notes" validate:"omitempty"`
		Origin          string             `json:"origin" validate:"omitempty"`
		FarmName        string             `json:"farm_name" validate:"omitempty"`
		HarvestInfo     string             `json:"harvest_info" validate:"omitempty"`
		Authenticity    string             `json:"authenticity" validate:"omitempty"`
		SensorData      *SensorDataRequest `json:"sensor_data" validate:"omitempty"`
	}

	UpdateFoodItemRequest struct {
		Name            string             `json:"name" validate:"omitempty"`
		Category        string             `json:"category" validate:"omitempty"`
		Quantity        float64            `json:"quantity" validate:"omitempty,gt=0"`
		Unit            string             `json:"unit" validate:"omitempty"`
		ExpiryDate      string             `json:"expiry_date" validate:"omitempty"`
		StorageLocation string             `json:"storage_location" validate:"omitempty"`
		Notes           string             `json:"notes" validate:"omitempty"`
		SensorData      *SensorDataRequest `json:"sensor_data" validate:"omitempty"`
	}

	UploadFoodImageRequest struct {
		FoodItemID string                `json:"food_id" form:"food_id" validate:"required,uuid"`
		Image      *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	ItemClaimResponse struct {
		RequestID   string `json:"request_id"`
		RequestKind string `json:"request_kind"` // "donation" or "composting"
		Status      string `json:"status"`
	}

	FoodItemResponse struct {
		ID                  string             `json:"id"`
		Name                string             `json:"name"`
		Category            string             `json:"category"`
		Quantity            float64            `json:"quantity"`
		Unit                string             `json:"unit"`
		DeclaredExpiryDate  time.Time          `json:"declared_expiry_date"`
		PredictedExpiryDate time.Time          `json:"predicted_expiry_date"`
		Status              string             `json:"status"`
		StorageLocation     string             `json:"storage_location,omitempty"`
		Notes               string             `json:"notes,omitempty"`
		Origin              string             `json:"origin,omitempty"`
		FarmName            string             `json:"farm_name,omitempty"`
		HarvestInfo         string             `json:"harvest_info,omitempty"`
		Authenticity        string             `json:"authenticity,omitempty"`
		ImageURL            string             `json:"image_url,omitempty"`
		Claim               *ItemClaimResponse `json:"claim,omitempty"`
		CreatedAt           time.Time          `json:"created_at"`
	}

	DashboardStatsResponse struct {
		TotalItems      int `json:"total_items"`
		FreshItems      int `json:"fresh_items"`
		NearExpiryItems int `json:"near_expiry_items"`
		ExpiredItems    int `json:"expired_items"`
		PendingItems    int `json:"pending_items"`
		AcceptedItems   int `json:"accepted_items"`
	}
)
