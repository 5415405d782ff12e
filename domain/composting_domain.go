package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateComposting = "composting request created successfully"
	MessageSuccessGetCompostings   = "composting requests retrieved successfully"
	MessageSuccessCancelComposting = "composting request cancelled successfully"
	MessageSuccessAcceptComposting = "composting request accepted successfully"
	MessageSuccessRejectComposting = "composting request rejected successfully"

	MessageFailedCreateComposting = "failed to create composting request"
	MessageFailedGetCompostings   = "failed to retrieve composting requests"
	MessageFailedCancelComposting = "failed to cancel composting request"
	MessageFailedAcceptComposting = "failed to accept composting request"
	MessageFailedRejectComposting = "failed to reject composting request"

	ErrInvalidFarm         = errors.New("invalid farm")
	ErrInvalidItemQuantity = errors.New("item quantity must be a number")
)

type (
	CreateCompostingRequest struct {
		FarmID string            `json:"farm_id" validate:"required,uuid"`
		Items  []RequestLineItem `json:"items" validate:"required,min=1,dive"`
		Type   string            `json:"type" validate:"required,oneof=pickup delivery"`
		SlotID string            `json:"slot_id" validate:"required,uuid"`
		Notes  string            `json:"notes" validate:"omitempty"`
	}

	CompostingResponse struct {
		ID             string                    `json:"id"`
		UserID         string                    `json:"user_id"`
		FarmID         string                    `json:"farm_id"`
		FarmName       string                    `json:"farm_name,omitempty"`
		Items          []RequestLineItemResponse `json:"items"`
		Type           string                    `json:"type"`
		SlotID         string                    `json:"slot_id"`
		SlotDate       time.Time                 `json:"slot_date,omitempty"`
		SlotTime       string                    `json:"slot_time,omitempty"`
		Notes          string                    `json:"notes,omitempty"`
		Status         string                    `json:"status"`
		Quantity       float64                   `json:"quantity"`
		CompostingDate time.Time                 `json:"composting_date"`
		CreatedAt      time.Time                 `json:"created_at"`
		UpdatedAt      time.Time                 `json:"updated_at"`
	}
)
