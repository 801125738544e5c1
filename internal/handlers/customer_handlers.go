package handlers

import (
	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

type CustomerHandlers struct {
	customerService services.CustomerService
}

func NewCustomerHandlers(customerService services.CustomerService) *CustomerHandlers {
	return &CustomerHandlers{customerService: customerService}
}

// List handles GET /customers.
func (h *CustomerHandlers) List(c echo.Context) error {
	customers, err := h.customerService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, customers)
}

// ListIDs handles GET /customers/ids. Checkout forms load this to pick the
// buyer without pulling full customer rows.
func (h *CustomerHandlers) ListIDs(c echo.Context) error {
	ids, err := h.customerService.ListIDs(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, ids)
}

// Add handles POST /customers.
func (h *CustomerHandlers) Add(c echo.Context) error {
	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.customerService.Add(c.Request().Context(), &customer); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "customer created")
}

// Edit handles PUT /customers/:ci.
func (h *CustomerHandlers) Edit(c echo.Context) error {
	var customer models.Customer
	if err := c.Bind(&customer); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	customer.CI = c.Param("ci")
	if err := h.customerService.Edit(c.Request().Context(), &customer); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "customer updated")
}

// Remove handles DELETE /customers/:ci.
func (h *CustomerHandlers) Remove(c echo.Context) error {
	if err := h.customerService.Remove(c.Request().Context(), c.Param("ci")); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "customer deleted")
}
