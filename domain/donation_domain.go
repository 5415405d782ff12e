package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateDonation      = "donation request created successfully"
	MessageSuccessGetDonations        = "donation requests retrieved successfully"
	MessageSuccessCancelDonation      = "donation request cancelled successfully"
	MessageSuccessAcceptDonation      = "donation request accepted successfully"
	MessageSuccessRejectDonation      = "donation request rejected successfully"
	MessageSuccessGetIncomingRequests = "incoming requests retrieved successfully"

	MessageFailedCreateDonation      = "failed to create donation request"
	MessageFailedGetDonations        = "failed to retrieve donation requests"
	MessageFailedCancelDonation      = "failed to cancel donation request"
	MessageFailedAcceptDonation      = "failed to accept donation request"
	MessageFailedRejectDonation      = "failed to reject donation request"
	MessageFailedGetIncomingRequests = "failed to retrieve incoming requests"

	ErrRequestNotFound           = errors.New("request not found")
	ErrUnauthorizedRequestAccess = errors.New("unauthorized access to request")
	ErrRequestNotPending         = errors.New("request is no longer pending")
	ErrInvalidOrganization       = errors.New("invalid organization")
	ErrInvalidRequestType        = errors.New("invalid request type")
	ErrSlotUnavailable           = errors.New("slot is not available")
	ErrEmptyItems                = errors.New("at least one item is required")
)

type (
	RequestLineItem struct {
		FoodItemID string `json:"food_item_id" validate:"required,uuid"`
		FoodName   string `json:"food_name" validate:"required"`
		Quantity   string `json:"quantity" validate:"required"`
		Unit       string `json:"unit" validate:"required"`
	}

	CreateDonationRequest struct {
		OrganizationID string            `json:"organization_id" validate:"required,uuid"`
		Items          []RequestLineItem `json:"items" validate:"required,min=1,dive"`
		Type           string            `json:"type" validate:"required,oneof=pickup delivery"`
		SlotID         string            `json:"slot_id" validate:"required,uuid"`
		Notes          string            `json:"notes" validate:"omitempty"`
	}

	RequestLineItemResponse struct {
		FoodItemID string  `json:"food_item_id"`
		FoodName   string  `json:"food_name"`
		Quantity   float64 `json:"quantity"`
		Unit       string  `json:"unit"`
	}

	DonationResponse struct {
		ID               string                    `json:"id"`
		UserID           string                    `json:"user_id"`
		OrganizationID   string                    `json:"organization_id"`
		OrganizationName string                    `json:"organization_name,omitempty"`
		Items            []RequestLineItemResponse `json:"items"`
		Type             string                    `json:"type"`
		SlotID           string                    `json:"slot_id"`
		SlotDate         time.Time                 `json:"slot_date,omitempty"`
		SlotTime         string                    `json:"slot_time,omitempty"`
		Notes            string                    `json:"notes,omitempty"`
		Status           string                    `json:"status"`
		CreatedAt        time.Time                 `json:"created_at"`
		UpdatedAt        time.Time                 `json:"updated_at"`
	}
)
