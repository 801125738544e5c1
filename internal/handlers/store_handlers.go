package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

// StoreHandlers covers the retail side of a branch: articles for sale,
// issued invoices, and the checkout that creates them.
type StoreHandlers struct {
	storeService services.StoreService
}

func NewStoreHandlers(storeService services.StoreService) *StoreHandlers {
	return &StoreHandlers{storeService: storeService}
}

// ListItems handles GET /store/items.
func (h *StoreHandlers) ListItems(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	items, err := h.storeService.ListItems(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, items)
}

// AddItem handles POST /store/items.
func (h *StoreHandlers) AddItem(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var item models.StoreItem
	if err := c.Bind(&item); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	item.BranchRIF = rif
	if err := h.storeService.AddItem(c.Request().Context(), &item); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "item created")
}

// EditItem handles PUT /store/items/:code.
func (h *StoreHandlers) EditItem(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var item models.StoreItem
	if err := c.Bind(&item); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	item.Code = code
	item.BranchRIF = rif
	if err := h.storeService.EditItem(c.Request().Context(), &item); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "item updated")
}

// ListInvoices handles GET /store/invoices.
func (h *StoreHandlers) ListInvoices(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	invoices, err := h.storeService.ListInvoices(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, invoices)
}

// GetInvoice handles GET /store/invoices/:code.
func (h *StoreHandlers) GetInvoice(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	view, err := h.storeService.GetInvoice(c.Request().Context(), code)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, view)
}

// Checkout handles POST /store/invoices. The body carries the customer and
// the cart; the branch comes from the session, prices from the database.
func (h *StoreHandlers) Checkout(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var req struct {
		CustomerCI string            `json:"customer_ci"`
		Cart       []models.CartLine `json:"cart"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	code, err := h.storeService.CreateInvoice(c.Request().Context(), rif, req.CustomerCI, req.Cart)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, map[string]int{"invoice_code": code})
}
