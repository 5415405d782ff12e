package handlers

import (
	"ecobytes-backend/domain"
	"ecobytes-backend/internal/api/presenters"
	"ecobytes-backend/pkg/slot"

	"github.com/gofiber/fiber/v2"
)

type (
	SlotHandler interface {
		GetOrganizations(c *fiber.Ctx) error
		GetFarms(c *fiber.Ctx) error
		GetOrganizationSlots(c *fiber.Ctx) error
		GetFarmSlots(c *fiber.Ctx) error
	}

	slotHandler struct {
		slotService slot.SlotService
	}
)

func NewSlotHandler(slotService slot.SlotService) SlotHandler {
	return &slotHandler{
		slotService: slotService,
	}
}

func (h *slotHandler) GetOrganizations(c *fiber.Ctx) error {
	organizations, err := h.slotService.GetOrganizations(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetOrganizations, err)
	}

	return presenters.SuccessResponse(c, organizations, fiber.StatusOK, domain.MessageSuccessGetOrganizations)
}

func (h *slotHandler) GetFarms(c *fiber.Ctx) error {
	farms, err := h.slotService.GetFarms(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetFarms, err)
	}

	return presenters.SuccessResponse(c, farms, fiber.StatusOK, domain.MessageSuccessGetFarms)
}

func (h *slotHandler) GetOrganizationSlots(c *fiber.Ctx) error {
	organizationID := c.Params("id")
	slotType := c.Query("type")

	slots, err := h.slotService.GetOrganizationSlots(c.Context(), organizationID, slotType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSlots, err)
	}

	return presenters.SuccessResponse(c, slots, fiber.StatusOK, domain.MessageSuccessGetSlots)
}

func (h *slotHandler) GetFarmSlots(c *fiber.Ctx) error {
	farmID := c.Params("id")
	slotType := c.Query("type")

	slots, err := h.slotService.GetFarmSlots(c.Context(), farmID, slotType)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSlots, err)
	}

	return presenters.SuccessResponse(c, slots, fiber.StatusOK, domain.MessageSuccessGetSlots)
}
