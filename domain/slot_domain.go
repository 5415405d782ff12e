package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetOrganizations = "organizations retrieved successfully"
	MessageSuccessGetFarms         = "farms retrieved successfully"
	MessageSuccessGetSlots         = "slots retrieved successfully"

	MessageFailedGetOrganizations = "failed to retrieve organizations"
	MessageFailedGetFarms         = "failed to retrieve farms"
	MessageFailedGetSlots         = "failed to retrieve slots"

	ErrSlotNotFound = errors.New("slot not found")
)

type (
	OrganizationResponse struct {
		ID               string `json:"id"`
		Name             string `json:"name"`
		Address          string `json:"address"`
		ContactNumber    string `json:"contact_number"`
		Email            string `json:"email,omitempty"`
		OperatingHours   string `json:"operating_hours,omitempty"`
		AcceptedFoodType string `json:"accepted_food_type,omitempty"`
	}

	FarmResponse struct {
		ID            string `json:"id"`
		Name          string `json:"name"`
		Address       string `json:"address"`
		ContactNumber string `json:"contact_number"`
		Email         string `json:"email,omitempty"`
		CompostTypes  string `json:"compost_types,omitempty"`
	}

	SlotResponse struct {
		ID          string    `json:"id"`
		Date        time.Time `json:"date"`
		Time        string    `json:"time"`
		Type        string    `json:"type"`
		IsAvailable bool      `json:"is_available"`
	}
)
