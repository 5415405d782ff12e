package handlers

import (
	"strconv"

	"ecobytes-backend/domain"
	"ecobytes-backend/internal/api/presenters"
	"ecobytes-backend/pkg/composting"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	CompostingHandler interface {
		CreateComposting(c *fiber.Ctx) error
		GetUserCompostings(c *fiber.Ctx) error
		GetCompostingDetails(c *fiber.Ctx) error
		CancelComposting(c *fiber.Ctx) error
		GetIncomingRequests(c *fiber.Ctx) error
		AcceptComposting(c *fiber.Ctx) error
		RejectComposting(c *fiber.Ctx) error
	}

	compostingHandler struct {
		compostingService composting.CompostingService
		validator         *validator.Validate
	}
)

func NewCompostingHandler(compostingService composting.CompostingService, validator *validator.Validate) CompostingHandler {
	return &compostingHandler{
		compostingService: compostingService,
		validator:         validator,
	}
}

func (h *compostingHandler) CreateComposting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateCompostingRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComposting, err)
	}

	res, err := h.compostingService.CreateComposting(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateComposting, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateComposting)
}

func (h *compostingHandler) GetUserCompostings(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	compostings, count, err := h.compostingService.GetUserCompostings(c.Context(), userID, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetCompostings, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"compostings": compostings,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetCompostings)
}

func (h *compostingHandler) GetCompostingDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	compostingID := c.Params("id")

	res, err := h.compostingService.GetCompostingByID(c.Context(), compostingID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedGetCompostings, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetCompostings)
}

func (h *compostingHandler) CancelComposting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	compostingID := c.Params("id")

	if err := h.compostingService.CancelComposting(c.Context(), compostingID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedCancelComposting, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancelComposting)
}

func (h *compostingHandler) GetIncomingRequests(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status", domain.RequestStatusPending)

	requests, err := h.compostingService.GetIncomingRequests(c.Context(), userID, status)
	if err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedGetIncomingRequests, err)
	}

	return presenters.SuccessResponse(c, requests, fiber.StatusOK, domain.MessageSuccessGetIncomingRequests)
}

func (h *compostingHandler) AcceptComposting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	compostingID := c.Params("id")

	if err := h.compostingService.AcceptComposting(c.Context(), compostingID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedAcceptComposting, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessAcceptComposting)
}

func (h *compostingHandler) RejectComposting(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	compostingID := c.Params("id")

	if err := h.compostingService.RejectComposting(c.Context(), compostingID, userID); err != nil {
		return presenters.ErrorResponse(c, statusForRequestError(err), domain.MessageFailedRejectComposting, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRejectComposting)
}
