package handlers

import (
	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

type SupplierHandlers struct {
	supplierService services.SupplierService
}

func NewSupplierHandlers(supplierService services.SupplierService) *SupplierHandlers {
	return &SupplierHandlers{supplierService: supplierService}
}

// List handles GET /suppliers.
func (h *SupplierHandlers) List(c echo.Context) error {
	suppliers, err := h.supplierService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, suppliers)
}

// Add handles POST /suppliers.
func (h *SupplierHandlers) Add(c echo.Context) error {
	var supplier models.Supplier
	if err := c.Bind(&supplier); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.supplierService.Add(c.Request().Context(), &supplier); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "supplier created")
}

// Edit handles PUT /suppliers/:rif.
func (h *SupplierHandlers) Edit(c echo.Context) error {
	var supplier models.Supplier
	if err := c.Bind(&supplier); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	supplier.RIF = c.Param("rif")
	if err := h.supplierService.Edit(c.Request().Context(), &supplier); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "supplier updated")
}

// Remove handles DELETE /suppliers/:rif.
func (h *SupplierHandlers) Remove(c echo.Context) error {
	if err := h.supplierService.Remove(c.Request().Context(), c.Param("rif")); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "supplier deleted")
}
