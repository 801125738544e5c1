package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/models"
	"tallerix/internal/services"
)

// WorkOrderHandlers covers vehicle intake orders and the service invoices
// issued when an order closes.
type WorkOrderHandlers struct {
	workOrderService services.WorkOrderService
}

func NewWorkOrderHandlers(workOrderService services.WorkOrderService) *WorkOrderHandlers {
	return &WorkOrderHandlers{workOrderService: workOrderService}
}

// List handles GET /work-orders for the session branch.
func (h *WorkOrderHandlers) List(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	orders, err := h.workOrderService.ListByBranch(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, orders)
}

// Add handles POST /work-orders.
func (h *WorkOrderHandlers) Add(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	var order models.WorkOrder
	if err := c.Bind(&order); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	order.BranchRIF = rif
	if err := h.workOrderService.Add(c.Request().Context(), &order); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "work order created")
}

// GetDetail handles GET /work-orders/:code: the intake header plus every
// performed activity with its consumed supplies.
func (h *WorkOrderHandlers) GetDetail(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	detail, err := h.workOrderService.GetDetail(c.Request().Context(), code)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, detail)
}

// PerformActivity handles POST /work-orders/:code/activities.
func (h *WorkOrderHandlers) PerformActivity(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var activity models.PerformedActivity
	if err := c.Bind(&activity); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	activity.WorkOrderCode = code
	if err := h.workOrderService.PerformActivity(c.Request().Context(), &activity); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "activity recorded")
}

// ConsumeSupply handles POST /work-orders/:code/consumptions.
func (h *WorkOrderHandlers) ConsumeSupply(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var consumption models.SupplyConsumption
	if err := c.Bind(&consumption); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	consumption.WorkOrderCode = code
	if err := h.workOrderService.ConsumeSupply(c.Request().Context(), &consumption); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "supply consumed")
}

// HasInvoice handles GET /work-orders/:code/invoice-status. The close-out
// screen uses it to decide whether closing is still allowed.
func (h *WorkOrderHandlers) HasInvoice(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	found, err := h.workOrderService.HasInvoice(c.Request().Context(), code)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, map[string]bool{"has_invoice": found})
}

// CloseOut handles PUT /work-orders/:code/close: records the real exit time
// and issues the corresponding service invoice.
func (h *WorkOrderHandlers) CloseOut(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	var req struct {
		RealOut string `json:"real_out"`
	}
	if err := c.Bind(&req); err != nil {
		return common.SendError(c, common.NewValidationError("body", "invalid request body"))
	}
	if err := h.workOrderService.CloseOut(c.Request().Context(), code, req.RealOut); err != nil {
		return common.SendError(c, err)
	}
	return common.SendMessage(c, "work order closed")
}

// ListInvoices handles GET /service-invoices for the session branch.
func (h *WorkOrderHandlers) ListInvoices(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	invoices, err := h.workOrderService.ListInvoicesByBranch(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, invoices)
}

// GetInvoiceDetail handles GET /service-invoices/:code.
func (h *WorkOrderHandlers) GetInvoiceDetail(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	detail, err := h.workOrderService.GetInvoiceDetail(c.Request().Context(), code)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, detail)
}
