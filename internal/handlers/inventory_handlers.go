package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

// InventoryHandlers covers workshop supplies, their lines, and physical
// count records.
type InventoryHandlers struct {
	inventoryService services.InventoryService
}

func NewInventoryHandlers(inventoryService services.InventoryService) *InventoryHandlers {
	return &InventoryHandlers{inventoryService: inventoryService}
}

// ListSupplies handles GET /inventory/supplies.
func (h *InventoryHandlers) ListSupplies(c echo.Context) error {
	supplies, err := h.inventoryService.ListSupplies(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, supplies)
}

// AddSupply handles POST /inventory/supplies.
func (h *InventoryHandlers) AddSupply(c echo.Context) error {
	var supply models.Supply
	if err := c.Bind(&supply); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.inventoryService.AddSupply(c.Request().Context(), &supply); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "supply created")
}

// EditSupply handles PUT /inventory/supplies/:code.
func (h *InventoryHandlers) EditSupply(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var supply models.Supply
	if err := c.Bind(&supply); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	supply.Code = code
	if err := h.inventoryService.EditSupply(c.Request().Context(), &supply); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "supply updated")
}

// RemoveSupply handles DELETE /inventory/supplies/:code.
func (h *InventoryHandlers) RemoveSupply(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	if err := h.inventoryService.RemoveSupply(c.Request().Context(), code); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "supply deleted")
}

// ListLines handles GET /inventory/lines.
func (h *InventoryHandlers) ListLines(c echo.Context) error {
	lines, err := h.inventoryService.ListLines(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, lines)
}

// AddLine handles POST /inventory/lines.
func (h *InventoryHandlers) AddLine(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.inventoryService.AddLine(c.Request().Context(), req.Name); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "line created")
}

// EditLine handles PUT /inventory/lines/:code.
func (h *InventoryHandlers) EditLine(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var line models.SupplyLine
	if err := c.Bind(&line); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	line.Code = code
	if err := h.inventoryService.EditLine(c.Request().Context(), &line); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "line updated")
}

// RemoveLine handles DELETE /inventory/lines/:code.
func (h *InventoryHandlers) RemoveLine(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	if err := h.inventoryService.RemoveLine(c.Request().Context(), code); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "line deleted")
}

// ListCounts handles GET /inventory/counts.
func (h *InventoryHandlers) ListCounts(c echo.Context) error {
	counts, err := h.inventoryService.ListCounts(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, counts)
}

// AddCount handles POST /inventory/counts.
func (h *InventoryHandlers) AddCount(c echo.Context) error {
	var count models.PhysicalCount
	if err := c.Bind(&count); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.inventoryService.AddCount(c.Request().Context(), &count); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "count recorded")
}
