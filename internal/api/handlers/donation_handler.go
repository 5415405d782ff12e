package handlers

import (
	"errors"
	"strconv"

	"ecobytes-backend/domain"
	"ecobytes-backend/internal/api/presenters"
	"ecobytes-backend/pkg/donation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	DonationHandler interface {
		CreateDonation(c *fiber.Ctx) error
		GetUserDonations(c *fiber.Ctx) error
		GetDonationDetails(c *fiber.Ctx) error
		CancelDonation(c *fiber.Ctx) error
		GetIncomingRequests(c *fiber.Ctx) error
		AcceptDonation(c *fiber.Ctx) error
		RejectDonation(c *fiber.Ctx) error
	}

	donationHandler struct {
		donationService donation.DonationService
		validator       *validator.Validate
	}
)

func NewDonationHandler(donationService donation.DonationService, validator *validator.Validate) DonationHandler {
	return &donationHandler{
		donationService: donationService,
		validator:       validator,
	}
}

func (h *donationHandler) CreateDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateDonationRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	res, err := h.donationService.CreateDonation(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateDonation, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateDonation)
}

func (h *donationHandler) GetUserDonations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	donations, count, err := h.donationService.GetUserDonations(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"donations": donations,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) GetDonationDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	res, err := h.donationService.GetDonationByID(c.Context(), donationID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedGetDonations, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDonations)
}

func (h *donationHandler) CancelDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.CancelDonation(c.Context(), donationID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedCancelDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelDonation)
}

func (h *donationHandler) GetIncomingRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status", domain.RequestStatusPending)

	requests, err := h.donationService.GetIncomingRequests(c.Context(), userID, status)
	if err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedGetIncomingRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetIncomingRequests)
}

func (h *donationHandler) AcceptDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.AcceptDonation(c.Context(), donationID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedAcceptDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcceptDonation)
}

func (h *donationHandler) RejectDonation(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	donationID := c.Params("id")

	if err := h.donationService.RejectDonation(c.Context(), donationID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedRejectDonation, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectDonation)
}

func statusForRequestError(err error) int {
	switch {
	case errors.Is(err, domain.ErrRequestNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUnauthorizedRequestAccess):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrRequestNotPending):
		return fiber.StatusConflict
	default:
		return fiber.StatusBadRequest
	}
}
