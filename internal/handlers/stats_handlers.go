package handlers

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"tallerix/internal/common"
	"tallerix/internal/services"
)

// StatsHandlers exposes the reporting views. All reads, no writes.
type StatsHandlers struct {
	statsService services.StatsService
}

func NewStatsHandlers(statsService services.StatsService) *StatsHandlers {
	return &StatsHandlers{statsService: statsService}
}

// BrandsByService handles GET /stats/brands-by-service.
func (h *StatsHandlers) BrandsByService(c echo.Context) error {
	rows, err := h.statsService.BrandsByService(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// StaffMonthlyServices handles GET /stats/staff-monthly.
func (h *StatsHandlers) StaffMonthlyServices(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	rows, err := h.statsService.StaffMonthlyServices(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// FrequentCustomers handles GET /stats/frequent-customers.
func (h *StatsHandlers) FrequentCustomers(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	rows, err := h.statsService.FrequentCustomers(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// ItemsBySales handles GET /stats/items-by-sales.
func (h *StatsHandlers) ItemsBySales(c echo.Context) error {
	rif, err := requireBranch(c)
	if err != nil {
		return common.SendError(c, err)
	}
	rows, err := h.statsService.ItemsBySales(c.Request().Context(), rif)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// MostRequestedServices handles GET /stats/most-requested-services.
func (h *StatsHandlers) MostRequestedServices(c echo.Context) error {
	rows, err := h.statsService.MostRequestedServices(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// VehicleHistory handles GET /stats/vehicles/:code/history.
func (h *StatsHandlers) VehicleHistory(c echo.Context) error {
	code, err := strconv.Atoi(c.Param("code"))
	if err != nil {
		return common.SendError(c, common.NewValidationError("code", "must be an integer"))
	}
	rows, err := h.statsService.VehicleHistory(c.Request().Context(), code)
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// BranchComparison handles GET /stats/branch-comparison?type=services|store.
func (h *StatsHandlers) BranchComparison(c echo.Context) error {
	rows, err := h.statsService.BranchComparison(c.Request().Context(), c.QueryParam("type"))
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// CancellingCustomers handles GET /stats/cancelled-reservations.
func (h *StatsHandlers) CancellingCustomers(c echo.Context) error {
	rows, err := h.statsService.CancellingCustomers(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// SuppliersByVolume handles GET /stats/top-suppliers.
func (h *StatsHandlers) SuppliersByVolume(c echo.Context) error {
	rows, err := h.statsService.SuppliersByVolume(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}

// StockAdjustments handles GET /stats/stock-adjustments.
func (h *StatsHandlers) StockAdjustments(c echo.Context) error {
	rows, err := h.statsService.StockAdjustments(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return common.SendData(c, rows)
}
